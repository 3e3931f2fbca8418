package heygen

import (
	"context"
	"net/url"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

func (c *Client) ListTemplates(ctx context.Context) ([]model.Template, error) {
	var data struct {
		Templates []model.Template `json:"templates"`
	}
	if err := c.getJSON(ctx, "/v2/templates", &data); err != nil {
		return nil, err
	}
	return data.Templates, nil
}

func (c *Client) GetTemplateDetails(ctx context.Context, templateID string) (*model.TemplateDetails, error) {
	var data model.TemplateDetails
	if err := c.getJSON(ctx, "/v3/template/"+url.PathEscape(templateID), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GenerateVideoFromTemplate renders a template with variable replacements and
// returns the provider-assigned video ID.
func (c *Client) GenerateVideoFromTemplate(ctx context.Context, templateID string, req *model.TemplateGenerateRequest) (string, error) {
	var data struct {
		VideoID string `json:"video_id"`
	}
	path := "/v2/template/" + url.PathEscape(templateID) + "/generate"
	if err := c.postJSON(ctx, path, req, &data); err != nil {
		return "", err
	}
	if data.VideoID == "" {
		return "", &APIError{Message: "no video_id returned"}
	}
	return data.VideoID, nil
}
