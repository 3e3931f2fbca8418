package model

import (
	"time"

	"github.com/mleroux/videogen-ms-go/internal/db"
)

// Generation is the local history record of one submitted render. It is an
// observation of provider state, written for listing and archiving purposes;
// status queries always go back to the provider.
type Generation struct {
	ID             db.UUID   `json:"id"`
	VideoID        string    `json:"video_id"`
	Title          string    `json:"title"`
	AvatarID       string    `json:"avatar_id"`
	VoiceID        string    `json:"voice_id"`
	Status         string    `json:"status"`
	VideoURL       *string   `json:"video_url,omitempty"`
	FailureMessage *string   `json:"failure_message,omitempty"`
	ArchiveKey     *string   `json:"archive_key,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
