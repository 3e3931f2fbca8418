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

type UploadAssetRequest struct {
	FilePath string `json:"file_path" validate:"required"`
}

func UploadAssetHandler(svc port.AssetLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UploadAssetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			return
		}

		asset, err := svc.UploadAsset(r.Context(), req.FilePath)
		if err != nil {
			WriteDomainError(w, "could not upload asset", err)
			return
		}

		RespondJSON(w, http.StatusCreated, asset)
		log.Printf("✅  Successfully uploaded asset #%s", asset.AssetID)
	}
}

func ListAssetsHandler(svc port.AssetLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets, err := svc.ListAssets(r.Context())
		if err != nil {
			WriteDomainError(w, "could not list assets", err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string][]model.Asset{"assets": assets})
	}
}

func DeleteAssetHandler(svc port.AssetLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := chi.URLParam(r, "assetID")
		if assetID == "" {
			WriteError(w, http.StatusBadRequest, "asset ID is required", nil)
			return
		}

		if err := svc.DeleteAsset(r.Context(), assetID); err != nil {
			WriteDomainError(w, "could not delete asset", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted asset #%s", assetID)
	}
}
