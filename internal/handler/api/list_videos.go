package api

import (
	"log"
	"net/http"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")

		out, err := svc.ListVideos(r.Context(), token)
		if err != nil {
			WriteDomainError(w, "could not list videos", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully listed %d videos", len(out.Videos))
	}
}
