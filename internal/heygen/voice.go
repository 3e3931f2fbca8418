package heygen

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// maxVoices caps the voices list; the provider exposes thousands and tool
// callers only need a digestible sample.
const maxVoices = 100

func (c *Client) ListVoices(ctx context.Context) ([]model.VoiceInfo, error) {
	var data struct {
		Voices []model.VoiceInfo `json:"voices"`
	}
	if err := c.getJSON(ctx, "/v2/voices", &data); err != nil {
		return nil, err
	}
	if len(data.Voices) > maxVoices {
		data.Voices = data.Voices[:maxVoices]
	}
	return data.Voices, nil
}
