// Package catalog exposes the provider's read-only listings (avatars, voices,
// templates) to the tool surfaces.
package catalog

import (
	"context"
	"fmt"

	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type avatarCatalogSrv struct {
	gw port.Gateway
}

// compile-time check: *avatarCatalogSrv must satisfy port.AvatarCatalog
var _ port.AvatarCatalog = (*avatarCatalogSrv)(nil)

// NewAvatarCatalog constructs an AvatarCatalog implementation.
func NewAvatarCatalog(gw port.Gateway) port.AvatarCatalog {
	return &avatarCatalogSrv{gw}
}

func (s *avatarCatalogSrv) ListAvatars(ctx context.Context) ([]model.Avatar, error) {
	return s.gw.ListAvatars(ctx)
}

func (s *avatarCatalogSrv) GetAvatarDetails(ctx context.Context, avatarID string) (*model.AvatarDetails, error) {
	if avatarID == "" {
		return nil, fmt.Errorf("avatar_id is required")
	}
	return s.gw.GetAvatarDetails(ctx, avatarID)
}

func (s *avatarCatalogSrv) ListAvatarGroups(ctx context.Context, includePublic bool) (port.ListAvatarGroupsOutput, error) {
	groups, total, err := s.gw.ListAvatarGroups(ctx, includePublic)
	if err != nil {
		return port.ListAvatarGroupsOutput{}, err
	}
	return port.ListAvatarGroupsOutput{Groups: groups, TotalCount: total}, nil
}

func (s *avatarCatalogSrv) ListAvatarsInGroup(ctx context.Context, groupID string) ([]model.GroupAvatar, error) {
	if groupID == "" {
		return nil, fmt.Errorf("group_id is required")
	}
	return s.gw.ListAvatarsInGroup(ctx, groupID)
}

type voiceCatalogSrv struct {
	gw port.Gateway
}

// compile-time check: *voiceCatalogSrv must satisfy port.VoiceCatalog
var _ port.VoiceCatalog = (*voiceCatalogSrv)(nil)

// NewVoiceCatalog constructs a VoiceCatalog implementation.
func NewVoiceCatalog(gw port.Gateway) port.VoiceCatalog {
	return &voiceCatalogSrv{gw}
}

func (s *voiceCatalogSrv) ListVoices(ctx context.Context) ([]model.VoiceInfo, error) {
	return s.gw.ListVoices(ctx)
}

type templateCatalogSrv struct {
	gw port.Gateway
}

// compile-time check: *templateCatalogSrv must satisfy port.TemplateCatalog
var _ port.TemplateCatalog = (*templateCatalogSrv)(nil)

// NewTemplateCatalog constructs a TemplateCatalog implementation.
func NewTemplateCatalog(gw port.Gateway) port.TemplateCatalog {
	return &templateCatalogSrv{gw}
}

func (s *templateCatalogSrv) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return s.gw.ListTemplates(ctx)
}

func (s *templateCatalogSrv) GetTemplateDetails(ctx context.Context, templateID string) (*model.TemplateDetails, error) {
	if templateID == "" {
		return nil, fmt.Errorf("template_id is required")
	}
	return s.gw.GetTemplateDetails(ctx, templateID)
}
