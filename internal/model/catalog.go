package model

// Read-only catalog resources fetched from the provider.

type Avatar struct {
	AvatarID        string `json:"avatar_id"`
	AvatarName      string `json:"avatar_name"`
	Gender          string `json:"gender,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
	PreviewVideoURL string `json:"preview_video_url,omitempty"`
	Premium         bool   `json:"premium,omitempty"`
	Type            string `json:"type,omitempty"`
}

type AvatarDetails struct {
	AvatarID        string           `json:"id"`
	AvatarName      string           `json:"name"`
	Gender          string           `json:"gender,omitempty"`
	Type            string           `json:"type,omitempty"`
	PreviewImageURL string           `json:"preview_image_url,omitempty"`
	PreviewVideoURL string           `json:"preview_video_url,omitempty"`
	Premium         bool             `json:"premium,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Poses           []map[string]any `json:"poses,omitempty"`
	Voices          []map[string]any `json:"voices,omitempty"`
}

type AvatarGroup struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NumLooks   int    `json:"num_looks,omitempty"`
	Preview    string `json:"preview_image,omitempty"`
	GroupType  string `json:"group_type,omitempty"`
	TrainState string `json:"train_status,omitempty"`
}

// GroupAvatar is an avatar as listed inside a group; the provider uses plain
// id/name keys there instead of the avatar_-prefixed ones.
type GroupAvatar struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Gender          string `json:"gender,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
	PreviewVideoURL string `json:"preview_video_url,omitempty"`
	Premium         bool   `json:"premium,omitempty"`
	DefaultVoiceID  string `json:"default_voice_id,omitempty"`
}

type VoiceInfo struct {
	VoiceID                  string `json:"voice_id"`
	Language                 string `json:"language"`
	Gender                   string `json:"gender"`
	Name                     string `json:"name"`
	PreviewAudio             string `json:"preview_audio,omitempty"`
	SupportPause             bool   `json:"support_pause"`
	EmotionSupport           bool   `json:"emotion_support"`
	SupportInteractiveAvatar bool   `json:"support_interactive_avatar"`
}

type Template struct {
	TemplateID        string `json:"template_id"`
	Name              string `json:"name"`
	ThumbnailImageURL string `json:"thumbnail_image_url,omitempty"`
}

type TemplateVariable struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// TemplateGenerateRequest is the wire payload for template-based generation.
type TemplateGenerateRequest struct {
	Test      bool           `json:"test"`
	Caption   bool           `json:"caption"`
	Title     string         `json:"title,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
}

// TemplateScene groups the variables belonging to one scene of a template.
type TemplateScene struct {
	SceneID   string             `json:"scene_id,omitempty"`
	Variables []TemplateVariable `json:"variables,omitempty"`
}

type TemplateDetails struct {
	TemplateID        string             `json:"id"`
	Name              string             `json:"name,omitempty"`
	ThumbnailImageURL string             `json:"thumbnail_image_url,omitempty"`
	Variables         []TemplateVariable `json:"variables,omitempty"`
	Scenes            []TemplateScene    `json:"scenes,omitempty"`
}
