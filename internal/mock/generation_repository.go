package mock

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// GenerationRepo implements persistence behaviour for tests.
type GenerationRepo struct {
	// stored values
	GenOut      *model.Generation
	InFlightOut []string

	// errors
	CreateErr   error
	UpdateErr   error
	GetErr      error
	InFlightErr error

	// recorded inputs
	CreatedIn *model.Generation
	UpdatedIn *model.Generation

	// call flags
	CreateCalled   bool
	UpdateCalled   bool
	GetCalled      bool
	InFlightCalled bool
}

func (r *GenerationRepo) Create(ctx context.Context, gen *model.Generation) error {
	r.CreateCalled = true
	r.CreatedIn = gen
	return r.CreateErr
}

func (r *GenerationRepo) Update(ctx context.Context, gen *model.Generation) error {
	r.UpdateCalled = true
	r.UpdatedIn = gen
	return r.UpdateErr
}

func (r *GenerationRepo) GetByVideoID(ctx context.Context, videoID string) (*model.Generation, error) {
	r.GetCalled = true
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.GenOut, nil
}

func (r *GenerationRepo) ListInFlight(ctx context.Context) ([]string, error) {
	r.InFlightCalled = true
	if r.InFlightErr != nil {
		return nil, r.InFlightErr
	}
	return r.InFlightOut, nil
}
