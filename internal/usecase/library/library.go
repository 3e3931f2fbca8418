// Package library manages workspace resources at the provider: uploaded
// assets and folders.
package library

import (
	"context"
	"fmt"

	"github.com/mleroux/videogen-ms-go/internal/logger"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type assetLibrarySrv struct {
	gw port.Gateway
}

// compile-time check: *assetLibrarySrv must satisfy port.AssetLibrary
var _ port.AssetLibrary = (*assetLibrarySrv)(nil)

// NewAssetLibrary constructs an AssetLibrary implementation.
func NewAssetLibrary(gw port.Gateway) port.AssetLibrary {
	return &assetLibrarySrv{gw}
}

func (s *assetLibrarySrv) UploadAsset(ctx context.Context, filePath string) (*model.Asset, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}
	asset, err := s.gw.UploadAsset(ctx, filePath)
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "asset #%s uploaded", asset.AssetID)
	return asset, nil
}

func (s *assetLibrarySrv) ListAssets(ctx context.Context) ([]model.Asset, error) {
	return s.gw.ListAssets(ctx)
}

func (s *assetLibrarySrv) DeleteAsset(ctx context.Context, assetID string) error {
	if assetID == "" {
		return fmt.Errorf("asset_id is required")
	}
	return s.gw.DeleteAsset(ctx, assetID)
}

type folderLibrarySrv struct {
	gw port.Gateway
}

// compile-time check: *folderLibrarySrv must satisfy port.FolderLibrary
var _ port.FolderLibrary = (*folderLibrarySrv)(nil)

// NewFolderLibrary constructs a FolderLibrary implementation.
func NewFolderLibrary(gw port.Gateway) port.FolderLibrary {
	return &folderLibrarySrv{gw}
}

func (s *folderLibrarySrv) ListFolders(ctx context.Context) ([]model.Folder, error) {
	return s.gw.ListFolders(ctx)
}

func (s *folderLibrarySrv) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}
	return s.gw.CreateFolder(ctx, name)
}

func (s *folderLibrarySrv) RenameFolder(ctx context.Context, folderID, name string) (*model.Folder, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folder_id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}
	return s.gw.RenameFolder(ctx, folderID, name)
}

func (s *folderLibrarySrv) TrashFolder(ctx context.Context, folderID string) error {
	if folderID == "" {
		return fmt.Errorf("folder_id is required")
	}
	return s.gw.TrashFolder(ctx, folderID)
}

func (s *folderLibrarySrv) RestoreFolder(ctx context.Context, folderID string) error {
	if folderID == "" {
		return fmt.Errorf("folder_id is required")
	}
	return s.gw.RestoreFolder(ctx, folderID)
}
