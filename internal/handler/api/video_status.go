package api

import (
	"log"
	"net/http"

	"github.com/mleroux/videogen-ms-go/internal/api_context"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func GetVideoStatusHandler(renderer port.HTTPRenderer, svc port.StatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "video ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderVideoStatus(r.Context(), svc, videoID)
		if err != nil {
			WriteDomainError(w, "could not get video status", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached status for video #%s", videoID)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned status for video #%s", videoID)
	}
}
