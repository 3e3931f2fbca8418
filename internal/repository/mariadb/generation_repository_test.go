package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/model"
)

func newMockRepo(t *testing.T) (*GenerationRepository, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	return NewGenerationRepository(sqlDB), mock, func() { _ = sqlDB.Close() }
}

func TestGenerationRepository_Create_Success(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mockID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	gen := &model.Generation{
		ID:       mockID,
		VideoID:  "vid_1",
		Title:    "Demo",
		AvatarID: "avatar_1",
		VoiceID:  "voice_1",
		Status:   "submitted",
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO generations
        (id, video_id, title, avatar_id, voice_id, status, video_url, failure_message, archive_key)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(
			gen.ID,
			gen.VideoID,
			gen.Title,
			gen.AvatarID,
			gen.VoiceID,
			gen.Status,
			gen.VideoURL,
			gen.FailureMessage,
			gen.ArchiveKey,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), gen); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestGenerationRepository_Create_ExecError(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO generations").
		WillReturnError(errors.New("exec failed"))

	gen := &model.Generation{ID: db.NewUUID(), VideoID: "vid_1", Status: "submitted"}
	if err := repo.Create(context.Background(), gen); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestGenerationRepository_Update_Success(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	url := "https://cdn.example.com/v.mp4"
	gen := &model.Generation{
		ID:       db.NewUUID(),
		VideoID:  "vid_2",
		Status:   "completed",
		VideoURL: &url,
	}

	mock.ExpectExec("UPDATE generations").
		WithArgs(
			gen.Status,
			gen.VideoURL,
			gen.FailureMessage,
			gen.ArchiveKey,
			gen.VideoID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), gen); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestGenerationRepository_GetByVideoID_Success(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mockID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	idBytes, _ := uuid.UUID(mockID).MarshalBinary()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "video_id", "title", "avatar_id", "voice_id", "status",
		"video_url", "failure_message", "archive_key", "created_at", "updated_at",
	}).AddRow(idBytes, "vid_3", "Demo", "avatar_1", "voice_1", "processing", nil, nil, nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs("vid_3").
		WillReturnRows(rows)

	gen, err := repo.GetByVideoID(context.Background(), "vid_3")
	if err != nil {
		t.Fatalf("GetByVideoID() returned unexpected error: %v", err)
	}
	if gen.VideoID != "vid_3" || gen.Status != "processing" {
		t.Errorf("unexpected generation %+v", gen)
	}
	if gen.ID != mockID {
		t.Errorf("expected ID %s, got %s", mockID, gen.ID)
	}
}

func TestGenerationRepository_GetByVideoID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs("vid_missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByVideoID(context.Background(), "vid_missing")
	if !errors.Is(err, ErrGenerationNotFound) {
		t.Errorf("expected ErrGenerationNotFound, got %v", err)
	}
}

func TestGenerationRepository_ListInFlight(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows([]string{"video_id"}).
		AddRow("vid_1").
		AddRow("vid_2")

	mock.ExpectQuery("SELECT video_id").
		WillReturnRows(rows)

	ids, err := repo.ListInFlight(context.Background())
	if err != nil {
		t.Fatalf("ListInFlight() returned unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "vid_1" || ids[1] != "vid_2" {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestGenerationRepository_ListInFlight_Empty(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT video_id").
		WillReturnRows(sqlmock.NewRows([]string{"video_id"}))

	ids, err := repo.ListInFlight(context.Background())
	if err != nil {
		t.Fatalf("ListInFlight() returned unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}
}
