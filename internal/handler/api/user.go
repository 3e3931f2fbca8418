package api

import (
	"net/http"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

func GetUserInfoHandler(svc port.AccountInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := svc.GetUserInfo(r.Context())
		if err != nil {
			WriteDomainError(w, "could not get user info", err)
			return
		}
		RespondJSON(w, http.StatusOK, info)
	}
}

type CreditsResponse struct {
	RemainingCredits int `json:"remaining_credits"`
}

func GetRemainingCreditsHandler(svc port.AccountInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credits, err := svc.GetRemainingCredits(r.Context())
		if err != nil {
			WriteDomainError(w, "could not get remaining credits", err)
			return
		}
		RespondJSON(w, http.StatusOK, CreditsResponse{RemainingCredits: credits})
	}
}
