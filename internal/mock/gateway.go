package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// Gateway implements provider behaviour for tests.
type Gateway struct {
	// stored values
	VideoIDOut      string
	StatusOut       *model.VideoStatusData
	VideosOut       []model.VideoListItem
	NextTokenOut    string
	AvatarsOut      []model.Avatar
	AvatarOut       *model.AvatarDetails
	GroupsOut       []model.AvatarGroup
	GroupTotalOut   int
	GroupAvatarsOut []model.GroupAvatar
	VoicesOut       []model.VoiceInfo
	TemplatesOut    []model.Template
	TemplateOut     *model.TemplateDetails
	AssetOut        *model.Asset
	AssetsOut       []model.Asset
	FoldersOut      []model.Folder
	FolderOut       *model.Folder
	UserOut         *model.UserInfo
	CreditsOut      int
	DownloadOut     []byte

	// errors
	GenerateErr     error
	StatusErr       error
	ListVideosErr   error
	AvatarsErr      error
	AvatarErr       error
	GroupsErr       error
	GroupAvatarsErr error
	VoicesErr       error
	TemplatesErr    error
	TemplateErr     error
	UploadErr       error
	AssetsErr       error
	DeleteAssetErr  error
	FoldersErr      error
	FolderErr       error
	UserErr         error
	CreditsErr      error
	DownloadErr     error

	// recorded inputs
	GenerateReqIn *model.VideoGenerateRequest
	TemplateReqIn *model.TemplateGenerateRequest
	TemplateIDIn  string
	VideoIDIn     string
	TokenIn       string
	FilePathIn    string
	DownloadURLIn string
	NameIn        string
	FolderIDIn    string

	// call counters
	GenerateCalled int
	StatusCalled   int
	DownloadCalled int
}

func (g *Gateway) GenerateVideo(ctx context.Context, req *model.VideoGenerateRequest) (string, error) {
	g.GenerateCalled++
	g.GenerateReqIn = req
	if g.GenerateErr != nil {
		return "", g.GenerateErr
	}
	return g.VideoIDOut, nil
}

func (g *Gateway) GetVideoStatus(ctx context.Context, videoID string) (*model.VideoStatusData, error) {
	g.StatusCalled++
	g.VideoIDIn = videoID
	if g.StatusErr != nil {
		return nil, g.StatusErr
	}
	return g.StatusOut, nil
}

func (g *Gateway) ListVideos(ctx context.Context, token string) ([]model.VideoListItem, string, error) {
	g.TokenIn = token
	if g.ListVideosErr != nil {
		return nil, "", g.ListVideosErr
	}
	return g.VideosOut, g.NextTokenOut, nil
}

func (g *Gateway) ListAvatars(ctx context.Context) ([]model.Avatar, error) {
	return g.AvatarsOut, g.AvatarsErr
}

func (g *Gateway) GetAvatarDetails(ctx context.Context, avatarID string) (*model.AvatarDetails, error) {
	if g.AvatarErr != nil {
		return nil, g.AvatarErr
	}
	return g.AvatarOut, nil
}

func (g *Gateway) ListAvatarGroups(ctx context.Context, includePublic bool) ([]model.AvatarGroup, int, error) {
	if g.GroupsErr != nil {
		return nil, 0, g.GroupsErr
	}
	return g.GroupsOut, g.GroupTotalOut, nil
}

func (g *Gateway) ListAvatarsInGroup(ctx context.Context, groupID string) ([]model.GroupAvatar, error) {
	return g.GroupAvatarsOut, g.GroupAvatarsErr
}

func (g *Gateway) ListVoices(ctx context.Context) ([]model.VoiceInfo, error) {
	return g.VoicesOut, g.VoicesErr
}

func (g *Gateway) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return g.TemplatesOut, g.TemplatesErr
}

func (g *Gateway) GetTemplateDetails(ctx context.Context, templateID string) (*model.TemplateDetails, error) {
	if g.TemplateErr != nil {
		return nil, g.TemplateErr
	}
	return g.TemplateOut, nil
}

func (g *Gateway) GenerateVideoFromTemplate(ctx context.Context, templateID string, req *model.TemplateGenerateRequest) (string, error) {
	g.TemplateIDIn = templateID
	g.TemplateReqIn = req
	if g.GenerateErr != nil {
		return "", g.GenerateErr
	}
	return g.VideoIDOut, nil
}

func (g *Gateway) UploadAsset(ctx context.Context, filePath string) (*model.Asset, error) {
	g.FilePathIn = filePath
	if g.UploadErr != nil {
		return nil, g.UploadErr
	}
	return g.AssetOut, nil
}

func (g *Gateway) ListAssets(ctx context.Context) ([]model.Asset, error) {
	return g.AssetsOut, g.AssetsErr
}

func (g *Gateway) DeleteAsset(ctx context.Context, assetID string) error {
	return g.DeleteAssetErr
}

func (g *Gateway) ListFolders(ctx context.Context) ([]model.Folder, error) {
	return g.FoldersOut, g.FoldersErr
}

func (g *Gateway) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	g.NameIn = name
	if g.FolderErr != nil {
		return nil, g.FolderErr
	}
	return g.FolderOut, nil
}

func (g *Gateway) RenameFolder(ctx context.Context, folderID, name string) (*model.Folder, error) {
	g.FolderIDIn = folderID
	g.NameIn = name
	if g.FolderErr != nil {
		return nil, g.FolderErr
	}
	return g.FolderOut, nil
}

func (g *Gateway) TrashFolder(ctx context.Context, folderID string) error {
	return g.FolderErr
}

func (g *Gateway) RestoreFolder(ctx context.Context, folderID string) error {
	return g.FolderErr
}

func (g *Gateway) GetUserInfo(ctx context.Context) (*model.UserInfo, error) {
	if g.UserErr != nil {
		return nil, g.UserErr
	}
	return g.UserOut, nil
}

func (g *Gateway) GetRemainingCredits(ctx context.Context) (int, error) {
	if g.CreditsErr != nil {
		return 0, g.CreditsErr
	}
	return g.CreditsOut, nil
}

func (g *Gateway) DownloadFile(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	g.DownloadCalled++
	g.DownloadURLIn = url
	if g.DownloadErr != nil {
		return nil, 0, g.DownloadErr
	}
	return io.NopCloser(bytes.NewReader(g.DownloadOut)), int64(len(g.DownloadOut)), nil
}
