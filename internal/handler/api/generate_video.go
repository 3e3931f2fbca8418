package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/usecase/video"
	"github.com/mleroux/videogen-ms-go/internal/validation"
)

type GenerateVideoRequest struct {
	Title      string                 `json:"title"`
	AvatarID   string                 `json:"avatar_id" validate:"required"`
	VoiceID    string                 `json:"voice_id" validate:"required"`
	InputText  string                 `json:"input_text" validate:"required"`
	Background *video.BackgroundInput `json:"background,omitempty"`
	Width      int                    `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height     int                    `json:"height,omitempty" validate:"omitempty,gt=0"`
	Test       bool                   `json:"test,omitempty"`
	Caption    bool                   `json:"caption,omitempty"`
	CallbackID string                 `json:"callback_id,omitempty"`
}

func GenerateVideoHandler(svc port.VideoGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateVideoRequest
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
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.GenerateVideoInput{
			Title:      req.Title,
			AvatarID:   req.AvatarID,
			VoiceID:    req.VoiceID,
			InputText:  req.InputText,
			Width:      req.Width,
			Height:     req.Height,
			Test:       req.Test,
			Caption:    req.Caption,
			CallbackID: req.CallbackID,
		}
		if req.Background != nil {
			bg, err := video.ParseBackground(*req.Background)
			if err != nil {
				WriteDomainError(w, "invalid background", err)
				return
			}
			in.Background = bg
		}

		out, err := svc.GenerateVideo(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "could not submit video generation", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, out)
		log.Printf("✅  Successfully submitted video generation #%s", out.VideoID)
	}
}
