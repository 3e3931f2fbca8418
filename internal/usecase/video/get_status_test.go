package video

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/mock"
	"github.com/mleroux/videogen-ms-go/internal/model"
)

func TestGetVideoStatus_Completed(t *testing.T) {
	gw := &mock.Gateway{StatusOut: &model.VideoStatusData{
		ID:       "vid_1",
		Status:   "completed",
		VideoURL: "https://cdn.example.com/v.mp4",
	}}
	svc := NewStatusGetter(gw)

	st, err := svc.GetVideoStatus(context.Background(), "vid_1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if st.State != model.JobCompleted {
		t.Errorf("expected completed, got %q", st.State)
	}
	if st.VideoURL != "https://cdn.example.com/v.mp4" {
		t.Errorf("unexpected video URL %q", st.VideoURL)
	}
	if gw.VideoIDIn != "vid_1" {
		t.Errorf("gateway queried with %q", gw.VideoIDIn)
	}
}

func TestGetVideoStatus_NotFoundIsNotFailed(t *testing.T) {
	gw := &mock.Gateway{StatusErr: fmt.Errorf("video: %w", heygen.ErrNotFound)}
	svc := NewStatusGetter(gw)

	_, err := svc.GetVideoStatus(context.Background(), "vid_missing")
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestGetVideoStatus_MissingID(t *testing.T) {
	svc := NewStatusGetter(&mock.Gateway{})

	_, err := svc.GetVideoStatus(context.Background(), "")
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestGetVideoStatus_GatewayError(t *testing.T) {
	gw := &mock.Gateway{StatusErr: errors.New("provider down")}
	svc := NewStatusGetter(gw)

	_, err := svc.GetVideoStatus(context.Background(), "vid_1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrVideoNotFound) {
		t.Error("generic gateway failures must not surface as not found")
	}
}

func TestListVideos_Passthrough(t *testing.T) {
	gw := &mock.Gateway{
		VideosOut:    []model.VideoListItem{{VideoID: "a", Status: "completed"}},
		NextTokenOut: "page2",
	}
	svc := NewLister(gw)

	out, err := svc.ListVideos(context.Background(), "page1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gw.TokenIn != "page1" {
		t.Errorf("expected token page1, got %q", gw.TokenIn)
	}
	if len(out.Videos) != 1 || out.NextToken != "page2" {
		t.Errorf("unexpected output %+v", out)
	}
}
