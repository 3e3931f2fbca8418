package port

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// VideoGenerator submits an avatar video render to the provider.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, in GenerateVideoInput) (GenerateVideoOutput, error)
}
type GenerateVideoInput struct {
	Title      string            `json:"title"`
	AvatarID   string            `json:"avatar_id" validate:"required"`
	VoiceID    string            `json:"voice_id" validate:"required"`
	InputText  string            `json:"input_text" validate:"required"`
	Background *model.Background `json:"background,omitempty"`
	Width      int               `json:"width,omitempty"`
	Height     int               `json:"height,omitempty"`
	Test       bool              `json:"test,omitempty"`
	Caption    bool              `json:"caption,omitempty"`
	CallbackID string            `json:"callback_id,omitempty"`
}
type GenerateVideoOutput struct {
	VideoID string `json:"video_id"`
}

// TemplateVideoGenerator renders a template with variable replacements.
type TemplateVideoGenerator interface {
	GenerateFromTemplate(ctx context.Context, in GenerateFromTemplateInput) (GenerateVideoOutput, error)
}
type GenerateFromTemplateInput struct {
	TemplateID string         `json:"template_id" validate:"required"`
	Title      string         `json:"title,omitempty"`
	Variables  map[string]any `json:"variables,omitempty"`
	Test       bool           `json:"test,omitempty"`
	Caption    bool           `json:"caption,omitempty"`
}

// StatusGetter reports the tracked state of a render.
type StatusGetter interface {
	GetVideoStatus(ctx context.Context, videoID string) (*model.JobStatus, error)
}

// VideoLister returns one page of the account's videos.
type VideoLister interface {
	ListVideos(ctx context.Context, token string) (ListVideosOutput, error)
}
type ListVideosOutput struct {
	Videos    []model.VideoListItem `json:"videos"`
	NextToken string                `json:"next_token,omitempty"`
}

// GenerationTracker polls one in-flight render, records the observation and
// archives the result once the render reaches a terminal state.
type GenerationTracker interface {
	TrackGeneration(ctx context.Context, videoID string) error
}

// BacklogReconciler re-enqueues tracking for every generation still recorded
// as in-flight.
type BacklogReconciler interface {
	ReconcileGenerations(ctx context.Context) (int, error)
}

// AvatarCatalog exposes the provider's avatar listings.
type AvatarCatalog interface {
	ListAvatars(ctx context.Context) ([]model.Avatar, error)
	GetAvatarDetails(ctx context.Context, avatarID string) (*model.AvatarDetails, error)
	ListAvatarGroups(ctx context.Context, includePublic bool) (ListAvatarGroupsOutput, error)
	ListAvatarsInGroup(ctx context.Context, groupID string) ([]model.GroupAvatar, error)
}
type ListAvatarGroupsOutput struct {
	Groups     []model.AvatarGroup `json:"avatar_group_list"`
	TotalCount int                 `json:"total_count"`
}

// VoiceCatalog exposes the provider's voice listing.
type VoiceCatalog interface {
	ListVoices(ctx context.Context) ([]model.VoiceInfo, error)
}

// TemplateCatalog exposes the provider's template listings.
type TemplateCatalog interface {
	ListTemplates(ctx context.Context) ([]model.Template, error)
	GetTemplateDetails(ctx context.Context, templateID string) (*model.TemplateDetails, error)
}

// AssetLibrary manages uploaded assets in the provider workspace.
type AssetLibrary interface {
	UploadAsset(ctx context.Context, filePath string) (*model.Asset, error)
	ListAssets(ctx context.Context) ([]model.Asset, error)
	DeleteAsset(ctx context.Context, assetID string) error
}

// FolderLibrary manages folders in the provider workspace.
type FolderLibrary interface {
	ListFolders(ctx context.Context) ([]model.Folder, error)
	CreateFolder(ctx context.Context, name string) (*model.Folder, error)
	RenameFolder(ctx context.Context, folderID, name string) (*model.Folder, error)
	TrashFolder(ctx context.Context, folderID string) error
	RestoreFolder(ctx context.Context, folderID string) error
}

// AccountInfo exposes account identity and remaining credits.
type AccountInfo interface {
	GetUserInfo(ctx context.Context) (*model.UserInfo, error)
	GetRemainingCredits(ctx context.Context) (int, error)
}
