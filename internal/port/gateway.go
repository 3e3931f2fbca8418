package port

import (
	"context"
	"io"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// Gateway abstracts the remote video-generation provider. Implementations
// translate transport failures into the gateway's sentinel errors so use
// cases never see raw HTTP details.
type Gateway interface {
	GenerateVideo(ctx context.Context, req *model.VideoGenerateRequest) (string, error)
	GetVideoStatus(ctx context.Context, videoID string) (*model.VideoStatusData, error)
	ListVideos(ctx context.Context, token string) ([]model.VideoListItem, string, error)

	ListAvatars(ctx context.Context) ([]model.Avatar, error)
	GetAvatarDetails(ctx context.Context, avatarID string) (*model.AvatarDetails, error)
	ListAvatarGroups(ctx context.Context, includePublic bool) ([]model.AvatarGroup, int, error)
	ListAvatarsInGroup(ctx context.Context, groupID string) ([]model.GroupAvatar, error)
	ListVoices(ctx context.Context) ([]model.VoiceInfo, error)

	ListTemplates(ctx context.Context) ([]model.Template, error)
	GetTemplateDetails(ctx context.Context, templateID string) (*model.TemplateDetails, error)
	GenerateVideoFromTemplate(ctx context.Context, templateID string, req *model.TemplateGenerateRequest) (string, error)

	UploadAsset(ctx context.Context, filePath string) (*model.Asset, error)
	ListAssets(ctx context.Context) ([]model.Asset, error)
	DeleteAsset(ctx context.Context, assetID string) error

	ListFolders(ctx context.Context) ([]model.Folder, error)
	CreateFolder(ctx context.Context, name string) (*model.Folder, error)
	RenameFolder(ctx context.Context, folderID, name string) (*model.Folder, error)
	TrashFolder(ctx context.Context, folderID string) error
	RestoreFolder(ctx context.Context, folderID string) error

	GetUserInfo(ctx context.Context) (*model.UserInfo, error)
	GetRemainingCredits(ctx context.Context) (int, error)

	DownloadFile(ctx context.Context, url string) (io.ReadCloser, int64, error)
}
