package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func ListAvatarsHandler(svc port.AvatarCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		avatars, err := svc.ListAvatars(r.Context())
		if err != nil {
			WriteDomainError(w, "could not list avatars", err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string][]model.Avatar{"avatars": avatars})
	}
}

func GetAvatarDetailsHandler(svc port.AvatarCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		avatarID := chi.URLParam(r, "avatarID")
		if avatarID == "" {
			WriteError(w, http.StatusBadRequest, "avatar ID is required", nil)
			return
		}

		details, err := svc.GetAvatarDetails(r.Context(), avatarID)
		if err != nil {
			WriteDomainError(w, "could not get avatar details", err)
			return
		}
		RespondJSON(w, http.StatusOK, details)
	}
}

func ListAvatarGroupsHandler(svc port.AvatarCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includePublic := r.URL.Query().Get("include_public") == "true"

		out, err := svc.ListAvatarGroups(r.Context(), includePublic)
		if err != nil {
			WriteDomainError(w, "could not list avatar groups", err)
			return
		}
		RespondJSON(w, http.StatusOK, out)
	}
}

func ListAvatarsInGroupHandler(svc port.AvatarCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, "groupID")
		if groupID == "" {
			WriteError(w, http.StatusBadRequest, "group ID is required", nil)
			return
		}

		avatars, err := svc.ListAvatarsInGroup(r.Context(), groupID)
		if err != nil {
			WriteDomainError(w, "could not list avatars in group", err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string][]model.GroupAvatar{"avatar_list": avatars})
	}
}
