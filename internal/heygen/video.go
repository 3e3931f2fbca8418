package heygen

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// GenerateVideo submits a render request and returns the provider-assigned
// video ID.
func (c *Client) GenerateVideo(ctx context.Context, req *model.VideoGenerateRequest) (string, error) {
	var data struct {
		VideoID string `json:"video_id"`
	}
	if err := c.postJSON(ctx, "/v2/video/generate", req, &data); err != nil {
		return "", err
	}
	if data.VideoID == "" {
		return "", &APIError{Message: "no video_id returned"}
	}
	return data.VideoID, nil
}

// GetVideoStatus fetches the raw provider status for a render. A provider 404
// means the video ID is unknown, not that the render failed.
func (c *Client) GetVideoStatus(ctx context.Context, videoID string) (*model.VideoStatusData, error) {
	var data model.VideoStatusData
	path := "/v1/video_status.get?video_id=" + url.QueryEscape(videoID)
	if err := c.getJSON(ctx, path, &data); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("video %q: %w", videoID, ErrNotFound)
		}
		return nil, err
	}
	return &data, nil
}

// ListVideos returns one page of the account's videos plus the pagination
// token for the next page, if any.
func (c *Client) ListVideos(ctx context.Context, token string) ([]model.VideoListItem, string, error) {
	var data struct {
		Videos []model.VideoListItem `json:"videos"`
		Token  string                `json:"token"`
	}
	path := "/v1/video.list"
	if token != "" {
		path += "?token=" + url.QueryEscape(token)
	}
	if err := c.getJSON(ctx, path, &data); err != nil {
		return nil, "", err
	}
	return data.Videos, data.Token, nil
}
