package video

import (
	"context"
	"errors"
	"testing"

	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/mock"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func testUUIDGen() db.UUID {
	return db.NewUUID()
}

func validInput() port.GenerateVideoInput {
	return port.GenerateVideoInput{
		Title:     "Demo",
		AvatarID:  "avatar_1",
		VoiceID:   "voice_1",
		InputText: "Hello",
	}
}

func TestGenerateVideo_Success(t *testing.T) {
	gw := &mock.Gateway{VideoIDOut: "vid_99"}
	repo := &mock.GenerationRepo{}
	tasks := &mock.TaskDispatcher{}
	svc := NewGenerator(gw, repo, tasks, testUUIDGen)

	out, err := svc.GenerateVideo(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.VideoID != "vid_99" {
		t.Errorf("expected video ID vid_99, got %q", out.VideoID)
	}
	if gw.GenerateReqIn == nil || gw.GenerateReqIn.VideoInputs[0].Character.AvatarID != "avatar_1" {
		t.Errorf("gateway did not receive the built request: %+v", gw.GenerateReqIn)
	}
	if !repo.CreateCalled {
		t.Error("expected a generation record to be created")
	}
	if repo.CreatedIn.Status != string(model.JobSubmitted) {
		t.Errorf("expected submitted record, got %q", repo.CreatedIn.Status)
	}
	if len(tasks.EnqueuedIDs) != 1 || tasks.EnqueuedIDs[0] != "vid_99" {
		t.Errorf("expected tracking enqueued for vid_99, got %v", tasks.EnqueuedIDs)
	}
}

func TestGenerateVideo_ValidationNeverReachesNetwork(t *testing.T) {
	gw := &mock.Gateway{}
	svc := NewGenerator(gw, &mock.GenerationRepo{}, &mock.TaskDispatcher{}, testUUIDGen)

	in := validInput()
	in.InputText = ""
	_, err := svc.GenerateVideo(context.Background(), in)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
	if gw.GenerateCalled != 0 {
		t.Errorf("gateway must not be called on validation failure, got %d calls", gw.GenerateCalled)
	}
}

func TestGenerateVideo_GatewayError(t *testing.T) {
	gw := &mock.Gateway{GenerateErr: errors.New("provider down")}
	repo := &mock.GenerationRepo{}
	svc := NewGenerator(gw, repo, &mock.TaskDispatcher{}, testUUIDGen)

	_, err := svc.GenerateVideo(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if repo.CreateCalled {
		t.Error("no record should be created when submission fails")
	}
}

func TestGenerateVideo_RecordFailureIsNotFatal(t *testing.T) {
	gw := &mock.Gateway{VideoIDOut: "vid_5"}
	repo := &mock.GenerationRepo{CreateErr: errors.New("db down")}
	tasks := &mock.TaskDispatcher{EnqueueErr: errors.New("queue down")}
	svc := NewGenerator(gw, repo, tasks, testUUIDGen)

	out, err := svc.GenerateVideo(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.VideoID != "vid_5" {
		t.Errorf("expected video ID vid_5, got %q", out.VideoID)
	}
}

func TestGenerateFromTemplate_Success(t *testing.T) {
	gw := &mock.Gateway{VideoIDOut: "vid_t1"}
	repo := &mock.GenerationRepo{}
	tasks := &mock.TaskDispatcher{}
	svc := NewTemplateGenerator(gw, repo, tasks, testUUIDGen)

	out, err := svc.GenerateFromTemplate(context.Background(), port.GenerateFromTemplateInput{
		TemplateID: "tpl_1",
		Title:      "From template",
		Variables:  map[string]any{"name": "Ada"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.VideoID != "vid_t1" {
		t.Errorf("expected video ID vid_t1, got %q", out.VideoID)
	}
	if gw.TemplateIDIn != "tpl_1" {
		t.Errorf("expected template tpl_1, got %q", gw.TemplateIDIn)
	}
	if gw.TemplateReqIn == nil || gw.TemplateReqIn.Variables["name"] != "Ada" {
		t.Errorf("unexpected template request %+v", gw.TemplateReqIn)
	}
	if !repo.CreateCalled || len(tasks.EnqueuedIDs) != 1 {
		t.Error("expected record and tracking task for template render")
	}
}

func TestGenerateFromTemplate_MissingTemplateID(t *testing.T) {
	svc := NewTemplateGenerator(&mock.Gateway{}, &mock.GenerationRepo{}, &mock.TaskDispatcher{}, testUUIDGen)

	_, err := svc.GenerateFromTemplate(context.Background(), port.GenerateFromTemplateInput{})
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}
