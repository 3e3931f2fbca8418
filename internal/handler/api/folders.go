package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/validation"
)

type FolderNameRequest struct {
	Name string `json:"name" validate:"required"`
}

func decodeFolderName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req FolderNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request payload", err)
		return "", false
	}
	if errs := validation.ValidateStruct(req); errs != nil {
		errsJSON, err := validation.ErrorsToJson(errs)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
			return "", false
		}
		RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
		return "", false
	}
	return req.Name, true
}

func folderIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	folderID := chi.URLParam(r, "folderID")
	if folderID == "" {
		WriteError(w, http.StatusBadRequest, "folder ID is required", nil)
		return "", false
	}
	return folderID, true
}

func ListFoldersHandler(svc port.FolderLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folders, err := svc.ListFolders(r.Context())
		if err != nil {
			WriteDomainError(w, "could not list folders", err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string][]model.Folder{"folders": folders})
	}
}

func CreateFolderHandler(svc port.FolderLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := decodeFolderName(w, r)
		if !ok {
			return
		}

		folder, err := svc.CreateFolder(r.Context(), name)
		if err != nil {
			WriteDomainError(w, "could not create folder", err)
			return
		}

		RespondJSON(w, http.StatusCreated, folder)
		log.Printf("✅  Successfully created folder #%s", folder.ID)
	}
}

func RenameFolderHandler(svc port.FolderLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderID, ok := folderIDParam(w, r)
		if !ok {
			return
		}
		name, ok := decodeFolderName(w, r)
		if !ok {
			return
		}

		folder, err := svc.RenameFolder(r.Context(), folderID, name)
		if err != nil {
			WriteDomainError(w, "could not rename folder", err)
			return
		}
		RespondJSON(w, http.StatusOK, folder)
	}
}

func TrashFolderHandler(svc port.FolderLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderID, ok := folderIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.TrashFolder(r.Context(), folderID); err != nil {
			WriteDomainError(w, "could not trash folder", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func RestoreFolderHandler(svc port.FolderLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderID, ok := folderIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.RestoreFolder(r.Context(), folderID); err != nil {
			WriteDomainError(w, "could not restore folder", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
