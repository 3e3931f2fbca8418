package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func ListTemplatesHandler(svc port.TemplateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := svc.ListTemplates(r.Context())
		if err != nil {
			WriteDomainError(w, "could not list templates", err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string][]model.Template{"templates": templates})
	}
}

func GetTemplateDetailsHandler(svc port.TemplateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "templateID")
		if templateID == "" {
			WriteError(w, http.StatusBadRequest, "template ID is required", nil)
			return
		}

		details, err := svc.GetTemplateDetails(r.Context(), templateID)
		if err != nil {
			WriteDomainError(w, "could not get template details", err)
			return
		}
		RespondJSON(w, http.StatusOK, details)
	}
}

type GenerateFromTemplateRequest struct {
	Title     string         `json:"title,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
	Test      bool           `json:"test,omitempty"`
	Caption   bool           `json:"caption,omitempty"`
}

func GenerateFromTemplateHandler(svc port.TemplateVideoGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := chi.URLParam(r, "templateID")
		if templateID == "" {
			WriteError(w, http.StatusBadRequest, "template ID is required", nil)
			return
		}

		var req GenerateFromTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.GenerateFromTemplate(r.Context(), port.GenerateFromTemplateInput{
			TemplateID: templateID,
			Title:      req.Title,
			Variables:  req.Variables,
			Test:       req.Test,
			Caption:    req.Caption,
		})
		if err != nil {
			WriteDomainError(w, "could not submit template render", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, out)
		log.Printf("✅  Successfully submitted template render #%s", out.VideoID)
	}
}
