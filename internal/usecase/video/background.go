package video

import (
	"fmt"
	"strings"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// BackgroundInput is the raw, unvalidated background descriptor as supplied
// by a tool caller. Which fields matter depends on Type.
type BackgroundInput struct {
	Type         string `json:"type"`
	Value        string `json:"value,omitempty"`
	ImageAssetID string `json:"image_asset_id,omitempty"`
	VideoAssetID string `json:"video_asset_id,omitempty"`
	PlayStyle    string `json:"play_style,omitempty"`
}

// ParseBackground validates a raw background descriptor into a tagged
// model.Background. An empty type means no background was requested and
// yields (nil, nil). Pure validation: no network calls, no mutation.
func ParseBackground(in BackgroundInput) (*model.Background, error) {
	if in.Type == "" {
		return nil, nil
	}

	switch model.BackgroundType(in.Type) {
	case model.BackgroundColor:
		if in.Value == "" {
			return nil, fmt.Errorf("%w: color backgrounds require a value", ErrMissingField)
		}
		if !isHexColor(in.Value) {
			return nil, fmt.Errorf("%w: %q is not a hex color", ErrInvalidFormat, in.Value)
		}
		if in.PlayStyle != "" {
			return nil, fmt.Errorf("%w: play_style only applies to video backgrounds", ErrInvalidEnumValue)
		}
		return &model.Background{Type: model.BackgroundColor, Color: in.Value}, nil

	case model.BackgroundImage:
		if in.ImageAssetID == "" {
			return nil, fmt.Errorf("%w: image backgrounds require an image_asset_id", ErrMissingField)
		}
		if in.PlayStyle != "" {
			return nil, fmt.Errorf("%w: play_style only applies to video backgrounds", ErrInvalidEnumValue)
		}
		return &model.Background{Type: model.BackgroundImage, ImageAssetID: in.ImageAssetID}, nil

	case model.BackgroundVideo:
		if in.VideoAssetID == "" {
			return nil, fmt.Errorf("%w: video backgrounds require a video_asset_id", ErrMissingField)
		}
		ps := model.PlayStyle(in.PlayStyle)
		if in.PlayStyle == "" {
			ps = model.PlayStyleFitToScene
		} else if !ps.Valid() {
			return nil, fmt.Errorf("%w: unknown play_style %q", ErrInvalidEnumValue, in.PlayStyle)
		}
		return &model.Background{Type: model.BackgroundVideo, VideoAssetID: in.VideoAssetID, PlayStyle: ps}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, in.Type)
	}
}

// isHexColor accepts an optional leading '#' followed by exactly 3 or 6 hex
// digits.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
