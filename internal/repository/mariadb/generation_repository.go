package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

// ErrGenerationNotFound is returned when no history row matches a video ID.
var ErrGenerationNotFound = errors.New("mariadb: generation not found")

type GenerationRepository struct {
	db *sql.DB
}

// compile-time check: *GenerationRepository must satisfy port.GenerationRepository
var _ port.GenerationRepository = (*GenerationRepository)(nil)

func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

func (r *GenerationRepository) Create(ctx context.Context, gen *model.Generation) error {
	log.Printf("creating database record for video #%s, at status %q...", gen.VideoID, gen.Status)

	const query = `
      INSERT INTO generations
        (id, video_id, title, avatar_id, voice_id, status, video_url, failure_message, archive_key)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		gen.ID, gen.VideoID, gen.Title,
		gen.AvatarID, gen.VoiceID, gen.Status,
		gen.VideoURL, gen.FailureMessage, gen.ArchiveKey,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *GenerationRepository) Update(ctx context.Context, gen *model.Generation) error {
	log.Printf("updating database record for video #%s, with status %q...", gen.VideoID, gen.Status)

	const query = `
      UPDATE generations
      SET
        status          = ?,
        video_url       = ?,
        failure_message = ?,
        archive_key     = ?
      WHERE video_id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		gen.Status,
		gen.VideoURL,
		gen.FailureMessage,
		gen.ArchiveKey,
		gen.VideoID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *GenerationRepository) GetByVideoID(ctx context.Context, videoID string) (*model.Generation, error) {
	log.Printf("fetching generation for video #%s from the database...", videoID)

	const query = `
      SELECT id, video_id, title, avatar_id, voice_id, status, video_url, failure_message, archive_key, created_at, updated_at
      FROM generations
      WHERE video_id = ?
    `
	row := r.db.QueryRowContext(ctx, query, videoID)
	var gen model.Generation
	if err := row.Scan(
		&gen.ID, &gen.VideoID, &gen.Title,
		&gen.AvatarID, &gen.VoiceID, &gen.Status,
		&gen.VideoURL, &gen.FailureMessage, &gen.ArchiveKey,
		&gen.CreatedAt, &gen.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenerationNotFound
		}
		return nil, err
	}

	return &gen, nil
}

func (r *GenerationRepository) ListInFlight(ctx context.Context) ([]string, error) {
	log.Printf("listing in-flight generations from the database...")

	const query = `
      SELECT video_id
      FROM generations
      WHERE status IN ('submitted', 'processing')
      ORDER BY created_at ASC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
