package heygen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

// UploadAsset sends a local file to the provider's upload host as a
// multipart form with a single "file" field. The part's content type is
// derived from the file extension, falling back to a raw byte stream.
func (c *Client) UploadAsset(ctx context.Context, filePath string) (*model.Asset, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("heygen: read %q: %w", filePath, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filePath)))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("heygen: build upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("heygen: build upload form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("heygen: build upload form: %w", err)
	}

	raw, err := c.do(ctx, "POST", c.uploadURL+"/v1/asset", buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("heygen: decode upload response: %w", err)
	}
	if msg, ok := envelopeError(env); ok {
		return nil, &APIError{Message: msg}
	}
	var asset model.Asset
	if err := json.Unmarshal(env.Data, &asset); err != nil {
		return nil, fmt.Errorf("heygen: decode upload data: %w", err)
	}
	return &asset, nil
}

func (c *Client) ListAssets(ctx context.Context) ([]model.Asset, error) {
	var data struct {
		Assets []model.Asset `json:"assets"`
	}
	if err := c.getJSON(ctx, "/v1/asset/list", &data); err != nil {
		return nil, err
	}
	return data.Assets, nil
}

func (c *Client) DeleteAsset(ctx context.Context, assetID string) error {
	return c.postJSON(ctx, "/v1/asset/"+url.PathEscape(assetID)+"/delete", nil, nil)
}
