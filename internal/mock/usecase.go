package mock

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

// VideoGenerator implements generation behaviour for tests.
type VideoGenerator struct {
	Out    port.GenerateVideoOutput
	Err    error
	In     port.GenerateVideoInput
	Called bool
}

func (g *VideoGenerator) GenerateVideo(ctx context.Context, in port.GenerateVideoInput) (port.GenerateVideoOutput, error) {
	g.Called = true
	g.In = in
	if g.Err != nil {
		return port.GenerateVideoOutput{}, g.Err
	}
	return g.Out, nil
}

// TemplateVideoGenerator implements template generation behaviour for tests.
type TemplateVideoGenerator struct {
	Out    port.GenerateVideoOutput
	Err    error
	In     port.GenerateFromTemplateInput
	Called bool
}

func (g *TemplateVideoGenerator) GenerateFromTemplate(ctx context.Context, in port.GenerateFromTemplateInput) (port.GenerateVideoOutput, error) {
	g.Called = true
	g.In = in
	if g.Err != nil {
		return port.GenerateVideoOutput{}, g.Err
	}
	return g.Out, nil
}

// StatusGetter implements status behaviour for tests.
type StatusGetter struct {
	Out       *model.JobStatus
	Err       error
	VideoIDIn string
	Called    bool
}

func (s *StatusGetter) GetVideoStatus(ctx context.Context, videoID string) (*model.JobStatus, error) {
	s.Called = true
	s.VideoIDIn = videoID
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Out, nil
}

// VideoLister implements listing behaviour for tests.
type VideoLister struct {
	Out     port.ListVideosOutput
	Err     error
	TokenIn string
	Called  bool
}

func (l *VideoLister) ListVideos(ctx context.Context, token string) (port.ListVideosOutput, error) {
	l.Called = true
	l.TokenIn = token
	if l.Err != nil {
		return port.ListVideosOutput{}, l.Err
	}
	return l.Out, nil
}

// GenerationTracker implements tracking behaviour for tests.
type GenerationTracker struct {
	Err       error
	VideoIDIn string
	Called    bool
}

func (t *GenerationTracker) TrackGeneration(ctx context.Context, videoID string) error {
	t.Called = true
	t.VideoIDIn = videoID
	return t.Err
}

// BacklogReconciler implements reconciliation behaviour for tests.
type BacklogReconciler struct {
	CountOut int
	Err      error
	Called   bool
}

func (r *BacklogReconciler) ReconcileGenerations(ctx context.Context) (int, error) {
	r.Called = true
	if r.Err != nil {
		return 0, r.Err
	}
	return r.CountOut, nil
}

// AvatarCatalog implements avatar catalog behaviour for tests.
type AvatarCatalog struct {
	AvatarsOut      []model.Avatar
	DetailsOut      *model.AvatarDetails
	GroupsOut       port.ListAvatarGroupsOutput
	GroupAvatarsOut []model.GroupAvatar
	Err             error
}

func (c *AvatarCatalog) ListAvatars(ctx context.Context) ([]model.Avatar, error) {
	return c.AvatarsOut, c.Err
}

func (c *AvatarCatalog) GetAvatarDetails(ctx context.Context, avatarID string) (*model.AvatarDetails, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.DetailsOut, nil
}

func (c *AvatarCatalog) ListAvatarGroups(ctx context.Context, includePublic bool) (port.ListAvatarGroupsOutput, error) {
	if c.Err != nil {
		return port.ListAvatarGroupsOutput{}, c.Err
	}
	return c.GroupsOut, nil
}

func (c *AvatarCatalog) ListAvatarsInGroup(ctx context.Context, groupID string) ([]model.GroupAvatar, error) {
	return c.GroupAvatarsOut, c.Err
}

// VoiceCatalog implements voice catalog behaviour for tests.
type VoiceCatalog struct {
	Out []model.VoiceInfo
	Err error
}

func (c *VoiceCatalog) ListVoices(ctx context.Context) ([]model.VoiceInfo, error) {
	return c.Out, c.Err
}

// TemplateCatalog implements template catalog behaviour for tests.
type TemplateCatalog struct {
	TemplatesOut []model.Template
	DetailsOut   *model.TemplateDetails
	Err          error
}

func (c *TemplateCatalog) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return c.TemplatesOut, c.Err
}

func (c *TemplateCatalog) GetTemplateDetails(ctx context.Context, templateID string) (*model.TemplateDetails, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.DetailsOut, nil
}

// AssetLibrary implements asset library behaviour for tests.
type AssetLibrary struct {
	AssetOut  *model.Asset
	AssetsOut []model.Asset
	Err       error

	UploadedPath   string
	DeletedAssetID string
}

func (l *AssetLibrary) UploadAsset(ctx context.Context, filePath string) (*model.Asset, error) {
	l.UploadedPath = filePath
	if l.Err != nil {
		return nil, l.Err
	}
	return l.AssetOut, nil
}

func (l *AssetLibrary) ListAssets(ctx context.Context) ([]model.Asset, error) {
	return l.AssetsOut, l.Err
}

func (l *AssetLibrary) DeleteAsset(ctx context.Context, assetID string) error {
	l.DeletedAssetID = assetID
	return l.Err
}

// FolderLibrary implements folder library behaviour for tests.
type FolderLibrary struct {
	FoldersOut []model.Folder
	FolderOut  *model.Folder
	Err        error

	NameIn     string
	FolderIDIn string
}

func (l *FolderLibrary) ListFolders(ctx context.Context) ([]model.Folder, error) {
	return l.FoldersOut, l.Err
}

func (l *FolderLibrary) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	l.NameIn = name
	if l.Err != nil {
		return nil, l.Err
	}
	return l.FolderOut, nil
}

func (l *FolderLibrary) RenameFolder(ctx context.Context, folderID, name string) (*model.Folder, error) {
	l.FolderIDIn = folderID
	l.NameIn = name
	if l.Err != nil {
		return nil, l.Err
	}
	return l.FolderOut, nil
}

func (l *FolderLibrary) TrashFolder(ctx context.Context, folderID string) error {
	l.FolderIDIn = folderID
	return l.Err
}

func (l *FolderLibrary) RestoreFolder(ctx context.Context, folderID string) error {
	l.FolderIDIn = folderID
	return l.Err
}

// AccountInfo implements account behaviour for tests.
type AccountInfo struct {
	UserOut    *model.UserInfo
	CreditsOut int
	Err        error
}

func (a *AccountInfo) GetUserInfo(ctx context.Context) (*model.UserInfo, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	return a.UserOut, nil
}

func (a *AccountInfo) GetRemainingCredits(ctx context.Context) (int, error) {
	if a.Err != nil {
		return 0, a.Err
	}
	return a.CreditsOut, nil
}
