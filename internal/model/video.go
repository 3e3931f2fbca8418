package model

// Provider-facing wire models for video generation. Field names and defaults
// mirror the provider's schema exactly.

type Character struct {
	Type        string  `json:"type"`
	AvatarID    string  `json:"avatar_id"`
	AvatarStyle string  `json:"avatar_style"`
	Scale       float64 `json:"scale"`
}

type VoiceConfig struct {
	Type      string `json:"type"`
	InputText string `json:"input_text"`
	VoiceID   string `json:"voice_id"`
}

// BackgroundPayload is the provider's flat background shape. omitempty keeps
// inactive variant fields out of the serialized request.
type BackgroundPayload struct {
	Type         string `json:"type"`
	Value        string `json:"value,omitempty"`
	URL          string `json:"url,omitempty"`
	ImageAssetID string `json:"image_asset_id,omitempty"`
	VideoAssetID string `json:"video_asset_id,omitempty"`
	PlayStyle    string `json:"play_style,omitempty"`
}

type VideoInput struct {
	Character  Character          `json:"character"`
	Voice      VoiceConfig        `json:"voice"`
	Background *BackgroundPayload `json:"background,omitempty"`
}

type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type VideoGenerateRequest struct {
	Title       string       `json:"title"`
	VideoInputs []VideoInput `json:"video_inputs"`
	Test        bool         `json:"test"`
	CallbackID  string       `json:"callback_id,omitempty"`
	Dimension   Dimension    `json:"dimension"`
	AspectRatio string       `json:"aspect_ratio,omitempty"`
	Caption     bool         `json:"caption"`
}

// VideoStatusData is the provider's raw status payload for one render. Status
// carries the provider's own vocabulary; TranslateStatus in the video usecase
// is the only place that interprets it.
type VideoStatusData struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	VideoURL     string    `json:"video_url,omitempty"`
	GIFURL       string    `json:"gif_url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Duration     float64   `json:"duration,omitempty"`
	CreatedAt    int64     `json:"created_at,omitempty"`
	Error        *JobError `json:"error,omitempty"`
}

// VideoListItem is one entry of the provider's video list endpoint.
type VideoListItem struct {
	VideoID      string  `json:"video_id"`
	Status       string  `json:"status"`
	VideoTitle   string  `json:"video_title,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	VideoURL     string  `json:"video_url,omitempty"`
	GIFURL       string  `json:"gif_url,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	CreatedAt    int64   `json:"created_at,omitempty"`
}
