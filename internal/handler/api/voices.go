package api

import (
	"net/http"

	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func ListVoicesHandler(svc port.VoiceCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voices, err := svc.ListVoices(r.Context())
		if err != nil {
			WriteDomainError(w, "could not list voices", err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string][]model.VoiceInfo{"voices": voices})
	}
}
