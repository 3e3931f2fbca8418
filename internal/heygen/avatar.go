package heygen

import (
	"context"
	"net/url"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

func (c *Client) ListAvatars(ctx context.Context) ([]model.Avatar, error) {
	var data struct {
		Avatars []model.Avatar `json:"avatars"`
	}
	if err := c.getJSON(ctx, "/v2/avatars", &data); err != nil {
		return nil, err
	}
	return data.Avatars, nil
}

func (c *Client) GetAvatarDetails(ctx context.Context, avatarID string) (*model.AvatarDetails, error) {
	var data model.AvatarDetails
	if err := c.getJSON(ctx, "/v2/avatar/"+url.PathEscape(avatarID)+"/details", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) ListAvatarGroups(ctx context.Context, includePublic bool) ([]model.AvatarGroup, int, error) {
	var data struct {
		AvatarGroupList []model.AvatarGroup `json:"avatar_group_list"`
		TotalCount      int                 `json:"total_count"`
	}
	path := "/v2/avatar_group.list?include_public=false"
	if includePublic {
		path = "/v2/avatar_group.list?include_public=true"
	}
	if err := c.getJSON(ctx, path, &data); err != nil {
		return nil, 0, err
	}
	return data.AvatarGroupList, data.TotalCount, nil
}

func (c *Client) ListAvatarsInGroup(ctx context.Context, groupID string) ([]model.GroupAvatar, error) {
	var data struct {
		AvatarList []model.GroupAvatar `json:"avatar_list"`
	}
	if err := c.getJSON(ctx, "/v2/avatar_group/"+url.PathEscape(groupID)+"/avatars", &data); err != nil {
		return nil, err
	}
	return data.AvatarList, nil
}
