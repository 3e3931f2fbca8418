package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mleroux/videogen-ms-go/internal/api_context"
)

func WithVideoID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "videoID")
			if id == "" {
				WriteError(w, http.StatusBadRequest, "video ID is required", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.VideoIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
