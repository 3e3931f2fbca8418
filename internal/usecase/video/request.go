package video

import (
	"fmt"

	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

// Provider defaults for fields a tool caller does not control.
const (
	characterType = "avatar"
	avatarStyle   = "normal"
	avatarScale   = 1.0
	voiceType     = "text"
	defaultWidth  = 1280
	defaultHeight = 720
)

// BuildGenerateRequest assembles the provider-facing payload from a validated
// input. Deterministic: the same input always yields the same request.
func BuildGenerateRequest(in port.GenerateVideoInput) (*model.VideoGenerateRequest, error) {
	if in.AvatarID == "" {
		return nil, fmt.Errorf("%w: avatar_id", ErrMissingRequiredField)
	}
	if in.VoiceID == "" {
		return nil, fmt.Errorf("%w: voice_id", ErrMissingRequiredField)
	}
	if in.InputText == "" {
		return nil, fmt.Errorf("%w: input_text", ErrMissingRequiredField)
	}

	width, height := in.Width, in.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	return &model.VideoGenerateRequest{
		Title: in.Title,
		VideoInputs: []model.VideoInput{{
			Character: model.Character{
				Type:        characterType,
				AvatarID:    in.AvatarID,
				AvatarStyle: avatarStyle,
				Scale:       avatarScale,
			},
			Voice: model.VoiceConfig{
				Type:      voiceType,
				InputText: in.InputText,
				VoiceID:   in.VoiceID,
			},
			Background: in.Background.Payload(),
		}},
		Test:       in.Test,
		Caption:    in.Caption,
		CallbackID: in.CallbackID,
		Dimension:  model.Dimension{Width: width, Height: height},
	}, nil
}
