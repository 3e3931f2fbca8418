package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mleroux/videogen-ms-go/internal/heygen"
	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// WriteDomainError maps use case and gateway failures to HTTP statuses.
// Caller input problems become 400s, provider failures surface as 502 so the
// caller can tell them apart from our own bugs.
func WriteDomainError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, video.ErrMissingField),
		errors.Is(err, video.ErrInvalidFormat),
		errors.Is(err, video.ErrInvalidEnumValue),
		errors.Is(err, video.ErrUnknownVariant),
		errors.Is(err, video.ErrMissingRequiredField):
		WriteError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, video.ErrVideoNotFound), errors.Is(err, heygen.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, heygen.ErrRateLimited):
		WriteError(w, http.StatusTooManyRequests, "provider rate limit exceeded", err)
	case errors.Is(err, heygen.ErrUnauthorized):
		WriteError(w, http.StatusBadGateway, "provider authentication failed", err)
	default:
		var apiErr *heygen.APIError
		if errors.As(err, &apiErr) {
			WriteError(w, http.StatusBadGateway, msg, err)
			return
		}
		WriteError(w, http.StatusInternalServerError, msg, err)
	}
}
