package port

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/db"
	"github.com/mleroux/videogen-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// GenerationRepository defines persistence operations for the generation
// history.
type GenerationRepository interface {
	Create(ctx context.Context, gen *model.Generation) error
	Update(ctx context.Context, gen *model.Generation) error
	GetByVideoID(ctx context.Context, videoID string) (*model.Generation, error)
	ListInFlight(ctx context.Context) ([]string, error)
}
