package heygen

import (
	"context"
	"net/url"

	"github.com/mleroux/videogen-ms-go/internal/model"
)

func (c *Client) ListFolders(ctx context.Context) ([]model.Folder, error) {
	var data struct {
		Folders []model.Folder `json:"folders"`
	}
	if err := c.getJSON(ctx, "/v1/folders", &data); err != nil {
		return nil, err
	}
	return data.Folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	body := map[string]string{"name": name}
	var data model.Folder
	if err := c.postJSON(ctx, "/v1/folders/create", body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) RenameFolder(ctx context.Context, folderID, name string) (*model.Folder, error) {
	body := map[string]string{"name": name}
	var data model.Folder
	if err := c.postJSON(ctx, "/v1/folders/"+url.PathEscape(folderID), body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) TrashFolder(ctx context.Context, folderID string) error {
	return c.postJSON(ctx, "/v1/folders/"+url.PathEscape(folderID)+"/trash", nil, nil)
}

func (c *Client) RestoreFolder(ctx context.Context, folderID string) error {
	return c.postJSON(ctx, "/v1/folders/"+url.PathEscape(folderID)+"/restore", nil, nil)
}
