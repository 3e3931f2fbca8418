package heygen

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// creditsPerMinute converts the provider's quota unit into credits.
const creditsPerMinute = 60

func (c *Client) GetRemainingCredits(ctx context.Context) (int, error) {
	var data struct {
		RemainingQuota int `json:"remaining_quota"`
	}
	if err := c.getJSON(ctx, "/v2/user/remaining_quota", &data); err != nil {
		return 0, err
	}
	return data.RemainingQuota / creditsPerMinute, nil
}

func (c *Client) GetUserInfo(ctx context.Context) (*model.UserInfo, error) {
	var data model.UserInfo
	if err := c.getJSON(ctx, "/v1/user/me", &data); err != nil {
		return nil, err
	}
	return &data, nil
}
