package heygen

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli, err := New(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		UploadURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return cli, srv
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing API key, got nil")
	}
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotKey, gotAgent string
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"error":null,"data":{"avatars":[]}}`))
	}))

	if _, err := cli.ListAvatars(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("expected X-Api-Key %q, got %q", "test-key", gotKey)
	}
	if gotAgent != "videogen-ms/"+Version {
		t.Errorf("expected User-Agent %q, got %q", "videogen-ms/"+Version, gotAgent)
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls int
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"error":null,"data":{"video_id":"vid_123"}}`))
	}))

	id, err := cli.GenerateVideo(context.Background(), &model.VideoGenerateRequest{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "vid_123" {
		t.Errorf("expected video ID %q, got %q", "vid_123", id)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestClient_ExhaustsRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cli, err := New(Config{APIKey: "test-key", BaseURL: srv.URL, MaxRetries: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := cli.ListAvatars(context.Background()); err == nil {
		t.Fatal("expected error after exhausted retries, got nil")
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad input"}`))
	}))

	_, err := cli.ListVoices(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestClient_StatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			_, err := cli.GetUserInfo(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClient_EnvelopeError(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"quota exceeded","data":null}`))
	}))

	_, err := cli.ListTemplates(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "quota exceeded" {
		t.Errorf("expected message %q, got %q", "quota exceeded", apiErr.Message)
	}
}

func TestClient_V1EnvelopeError(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":40012,"message":"folder not found","data":null}`))
	}))

	_, err := cli.ListFolders(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "folder not found" {
		t.Errorf("expected message %q, got %q", "folder not found", apiErr.Message)
	}
}

func TestGetRemainingCredits_ConvertsQuota(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/user/remaining_quota" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"error":null,"data":{"remaining_quota":615}}`))
	}))

	credits, err := cli.GetRemainingCredits(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if credits != 10 {
		t.Errorf("expected 10 credits, got %d", credits)
	}
}

func TestGetVideoStatus_DecodesPayload(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("video_id"); got != "vid_9" {
			t.Errorf("expected video_id %q, got %q", "vid_9", got)
		}
		w.Write([]byte(`{"code":100,"data":{"id":"vid_9","status":"completed","video_url":"https://cdn.example.com/v.mp4","duration":12.5}}`))
	}))

	st, err := cli.GetVideoStatus(context.Background(), "vid_9")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if st.Status != "completed" {
		t.Errorf("expected status completed, got %q", st.Status)
	}
	if st.VideoURL != "https://cdn.example.com/v.mp4" {
		t.Errorf("unexpected video URL %q", st.VideoURL)
	}
	if st.Duration != 12.5 {
		t.Errorf("expected duration 12.5, got %v", st.Duration)
	}
}

func TestGetVideoStatus_NotFound(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := cli.GetVideoStatus(context.Background(), "vid_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListVoices_CapsResults(t *testing.T) {
	payload := `{"error":null,"data":{"voices":[`
	for i := 0; i < 150; i++ {
		if i > 0 {
			payload += ","
		}
		payload += `{"voice_id":"v","language":"en","gender":"female","name":"n"}`
	}
	payload += `]}}`

	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))

	voices, err := cli.ListVoices(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(voices) != maxVoices {
		t.Errorf("expected %d voices, got %d", maxVoices, len(voices))
	}
}

func TestListVideos_PassesToken(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("token"); got != "page2" {
			t.Errorf("expected token %q, got %q", "page2", got)
		}
		w.Write([]byte(`{"code":100,"data":{"videos":[{"video_id":"a","status":"completed"}],"token":"page3"}}`))
	}))

	videos, next, err := cli.ListVideos(context.Background(), "page2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(videos) != 1 || videos[0].VideoID != "a" {
		t.Errorf("unexpected videos %+v", videos)
	}
	if next != "page3" {
		t.Errorf("expected next token %q, got %q", "page3", next)
	}
}

func TestUploadAsset_SendsMultipartForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	if err := os.WriteFile(path, []byte("not-a-real-png"), 0o600); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var gotPath, gotFilename, gotPartType string
	var gotContent []byte
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		mr, err := r.MultipartReader()
		if err != nil {
			t.Errorf("expected multipart request, got %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		part, err := mr.NextPart()
		if err != nil {
			t.Errorf("expected a form part, got %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if part.FormName() != "file" {
			t.Errorf("expected form field %q, got %q", "file", part.FormName())
		}
		gotFilename = part.FileName()
		gotPartType = part.Header.Get("Content-Type")
		gotContent, _ = io.ReadAll(part)
		w.Write([]byte(`{"code":100,"data":{"asset_id":"asset_1","url":"https://resource.heygen.ai/asset_1"}}`))
	}))

	asset, err := cli.UploadAsset(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if asset.AssetID != "asset_1" {
		t.Errorf("expected asset ID %q, got %q", "asset_1", asset.AssetID)
	}
	if asset.URL != "https://resource.heygen.ai/asset_1" {
		t.Errorf("unexpected asset URL %q", asset.URL)
	}
	if gotPath != "/v1/asset" {
		t.Errorf("expected path /v1/asset, got %q", gotPath)
	}
	if gotFilename != "bg.png" {
		t.Errorf("expected filename %q, got %q", "bg.png", gotFilename)
	}
	if gotPartType != "image/png" {
		t.Errorf("expected part Content-Type image/png, got %q", gotPartType)
	}
	if string(gotContent) != "not-a-real-png" {
		t.Errorf("unexpected uploaded content %q", gotContent)
	}
}

func TestListAssets_DecodesFields(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":100,"data":{"assets":[{"asset_id":"asset_7","file_name":"bg.png","file_type":"image","type":"image","size":2048,"created_at":"2026-08-20T10:00:00Z"}]}}`))
	}))

	assets, err := cli.ListAssets(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	got := assets[0]
	if got.AssetID != "asset_7" {
		t.Errorf("expected asset ID %q, got %q", "asset_7", got.AssetID)
	}
	if got.FileName != "bg.png" {
		t.Errorf("expected file name %q, got %q", "bg.png", got.FileName)
	}
	if got.FileType != "image" {
		t.Errorf("expected file type %q, got %q", "image", got.FileType)
	}
	if got.SizeBytes != 2048 {
		t.Errorf("expected size 2048, got %d", got.SizeBytes)
	}
	if got.CreatedAt != "2026-08-20T10:00:00Z" {
		t.Errorf("unexpected created_at %q", got.CreatedAt)
	}
}

func TestGetTemplateDetails_DecodesVariableList(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/template/tpl_1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"error":null,"data":{"id":"tpl_1","name":"Promo","variables":[{"name":"title","type":"text"},{"name":"logo","type":"image"}],"scenes":[{"scene_id":"sc_1","variables":[{"name":"title","type":"text"}]}]}}`))
	}))

	details, err := cli.GetTemplateDetails(context.Background(), "tpl_1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if details.TemplateID != "tpl_1" {
		t.Errorf("expected template ID %q, got %q", "tpl_1", details.TemplateID)
	}
	if len(details.Variables) != 2 || details.Variables[0].Name != "title" {
		t.Errorf("unexpected variables %+v", details.Variables)
	}
	if len(details.Scenes) != 1 || details.Scenes[0].SceneID != "sc_1" {
		t.Errorf("unexpected scenes %+v", details.Scenes)
	}
}

func TestDownloadFile_RejectsErrorStatus(t *testing.T) {
	cli, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, _, err := cli.DownloadFile(context.Background(), srv.URL+"/file.mp4")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
