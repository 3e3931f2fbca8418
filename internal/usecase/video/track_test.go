package video

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/mock"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func newTracker(gw *mock.Gateway, repo *mock.GenerationRepo, cache *mock.Cache, strg *mock.Storage) port.GenerationTracker {
	return NewTracker(gw, repo, cache, strg, "videos")
}

func TestTrackGeneration_StillProcessing(t *testing.T) {
	gw := &mock.Gateway{StatusOut: &model.VideoStatusData{Status: "processing"}}
	repo := &mock.GenerationRepo{GenOut: &model.Generation{VideoID: "vid_1", Status: "submitted"}}
	svc := newTracker(gw, repo, &mock.Cache{}, &mock.Storage{})

	err := svc.TrackGeneration(context.Background(), "vid_1")
	if !errors.Is(err, ErrStillProcessing) {
		t.Fatalf("expected ErrStillProcessing, got %v", err)
	}
	if !repo.UpdateCalled {
		t.Error("expected the history row to record the observed state")
	}
	if repo.UpdatedIn.Status != string(model.JobProcessing) {
		t.Errorf("expected processing, got %q", repo.UpdatedIn.Status)
	}
}

func TestTrackGeneration_CompletedSettlesAndArchives(t *testing.T) {
	gw := &mock.Gateway{
		StatusOut: &model.VideoStatusData{
			Status:   "completed",
			VideoURL: "https://cdn.example.com/v.mp4",
			Duration: 14,
		},
		DownloadOut: []byte("mp4-bytes"),
	}
	repo := &mock.GenerationRepo{GenOut: &model.Generation{VideoID: "vid_2", Status: "processing"}}
	cache := &mock.Cache{}
	strg := &mock.Storage{}
	svc := newTracker(gw, repo, cache, strg)

	if err := svc.TrackGeneration(context.Background(), "vid_2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.UpdatedIn.Status != string(model.JobCompleted) {
		t.Errorf("expected completed row, got %q", repo.UpdatedIn.Status)
	}
	if repo.UpdatedIn.VideoURL == nil || *repo.UpdatedIn.VideoURL != "https://cdn.example.com/v.mp4" {
		t.Errorf("expected video URL on the row, got %v", repo.UpdatedIn.VideoURL)
	}

	if !cache.SetStatusCalled {
		t.Fatal("expected terminal status to be cached")
	}
	var cached model.JobStatus
	if err := json.Unmarshal(cache.StatusOut, &cached); err != nil {
		t.Fatalf("cached payload is not valid JSON: %v", err)
	}
	if cached.State != model.JobCompleted || cached.Duration != 14 {
		t.Errorf("unexpected cached status %+v", cached)
	}

	if !strg.SaveCalled || strg.SavedKey != "vid_2.mp4" {
		t.Errorf("expected archive save under vid_2.mp4, got %q", strg.SavedKey)
	}
	if string(strg.SavedData) != "mp4-bytes" {
		t.Errorf("archived bytes do not match the download: %q", strg.SavedData)
	}
	if gw.DownloadURLIn != "https://cdn.example.com/v.mp4" {
		t.Errorf("downloaded from %q", gw.DownloadURLIn)
	}
}

func TestTrackGeneration_ArchiveSkippedWhenPresent(t *testing.T) {
	gw := &mock.Gateway{StatusOut: &model.VideoStatusData{Status: "completed", VideoURL: "https://cdn.example.com/v.mp4"}}
	repo := &mock.GenerationRepo{GenOut: &model.Generation{VideoID: "vid_3"}}
	strg := &mock.Storage{ExistsOut: true}
	svc := newTracker(gw, repo, &mock.Cache{}, strg)

	if err := svc.TrackGeneration(context.Background(), "vid_3"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strg.SaveCalled {
		t.Error("archive must not be rewritten when the object already exists")
	}
	if gw.DownloadCalled != 0 {
		t.Error("no download should happen when the archive already exists")
	}
}

func TestTrackGeneration_FailedSettlesWithoutArchive(t *testing.T) {
	gw := &mock.Gateway{StatusOut: &model.VideoStatusData{
		Status: "failed",
		Error:  &model.JobError{Message: "render failed"},
	}}
	repo := &mock.GenerationRepo{GenOut: &model.Generation{VideoID: "vid_4"}}
	cache := &mock.Cache{}
	strg := &mock.Storage{}
	svc := newTracker(gw, repo, cache, strg)

	if err := svc.TrackGeneration(context.Background(), "vid_4"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.UpdatedIn.FailureMessage == nil || *repo.UpdatedIn.FailureMessage != "render failed" {
		t.Errorf("expected failure message on the row, got %v", repo.UpdatedIn.FailureMessage)
	}
	if strg.SaveCalled {
		t.Error("failed renders must not be archived")
	}
	if !cache.SetStatusCalled {
		t.Error("failed terminal statuses are cacheable too")
	}
}

func TestTrackGeneration_ProviderForgotVideo(t *testing.T) {
	gw := &mock.Gateway{StatusErr: fmt.Errorf("video: %w", heygen.ErrNotFound)}
	repo := &mock.GenerationRepo{GenOut: &model.Generation{VideoID: "vid_5"}}
	cache := &mock.Cache{}
	svc := newTracker(gw, repo, cache, &mock.Storage{})

	if err := svc.TrackGeneration(context.Background(), "vid_5"); err != nil {
		t.Fatalf("expected no error for a permanently unknown video, got %v", err)
	}
	if repo.UpdatedIn.Status != string(model.JobFailed) {
		t.Errorf("expected failed row, got %q", repo.UpdatedIn.Status)
	}
	if !cache.DelStatusCalled || !cache.DelEtagCalled {
		t.Error("stale cached status must be dropped when the provider forgets a video")
	}
}

func TestTrackGeneration_TransientGatewayError(t *testing.T) {
	gw := &mock.Gateway{StatusErr: errors.New("provider down")}
	repo := &mock.GenerationRepo{}
	svc := newTracker(gw, repo, &mock.Cache{}, &mock.Storage{})

	err := svc.TrackGeneration(context.Background(), "vid_6")
	if err == nil {
		t.Fatal("expected error so the task queue retries, got nil")
	}
	if repo.UpdateCalled {
		t.Error("nothing should be settled on a transient failure")
	}
}

func TestReconcileGenerations(t *testing.T) {
	repo := &mock.GenerationRepo{InFlightOut: []string{"vid_1", "vid_2"}}
	tasks := &mock.TaskDispatcher{}
	svc := NewReconciler(repo, tasks)

	n, err := svc.ReconcileGenerations(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 enqueued, got %d", n)
	}
	if len(tasks.EnqueuedIDs) != 2 {
		t.Errorf("expected 2 tasks, got %v", tasks.EnqueuedIDs)
	}
}

func TestReconcileGenerations_Empty(t *testing.T) {
	svc := NewReconciler(&mock.GenerationRepo{}, &mock.TaskDispatcher{})

	n, err := svc.ReconcileGenerations(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 enqueued, got %d", n)
	}
}
