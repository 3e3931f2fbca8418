package model

// BackgroundType tags the variant of a Background descriptor.
type BackgroundType string

const (
	BackgroundColor BackgroundType = "color"
	BackgroundImage BackgroundType = "image"
	BackgroundVideo BackgroundType = "video"
)

// PlayStyle controls how a video background's duration relates to the
// narration duration. Only meaningful for the video variant.
type PlayStyle string

const (
	PlayStyleFitToScene PlayStyle = "fit_to_scene"
	PlayStyleFreeze     PlayStyle = "freeze"
	PlayStyleLoop       PlayStyle = "loop"
	PlayStyleFullVideo  PlayStyle = "full_video"
)

func (p PlayStyle) Valid() bool {
	switch p {
	case PlayStyleFitToScene, PlayStyleFreeze, PlayStyleLoop, PlayStyleFullVideo:
		return true
	}
	return false
}

// Background is a validated background descriptor. Exactly one variant is
// populated, according to Type; fields of the other variants stay zero.
// A nil *Background means no background was requested.
type Background struct {
	Type BackgroundType

	// color variant
	Color string

	// image variant
	ImageAssetID string

	// video variant
	VideoAssetID string
	PlayStyle    PlayStyle
}

// Payload converts the descriptor into the provider's flat wire shape.
// Only the fields of the active variant are set, so nothing from another
// variant can leak into the request.
func (b *Background) Payload() *BackgroundPayload {
	if b == nil {
		return nil
	}
	p := &BackgroundPayload{Type: string(b.Type)}
	switch b.Type {
	case BackgroundColor:
		p.Value = b.Color
	case BackgroundImage:
		p.ImageAssetID = b.ImageAssetID
	case BackgroundVideo:
		p.VideoAssetID = b.VideoAssetID
		p.PlayStyle = string(b.PlayStyle)
	}
	return p
}
