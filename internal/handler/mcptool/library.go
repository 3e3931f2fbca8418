package mcptool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func registerLibraryTools(s *server.MCPServer, svcs Services) {
	s.AddTool(mcp.NewTool("upload_asset",
		mcp.WithDescription("Upload a local file (image, video or audio) to the provider asset library."),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path of the local file to upload")),
	), uploadAssetHandler(svcs.Assets))

	s.AddTool(mcp.NewTool("list_assets",
		mcp.WithDescription("List assets in the provider asset library."),
	), listAssetsHandler(svcs.Assets))

	s.AddTool(mcp.NewTool("delete_asset",
		mcp.WithDescription("Delete one asset from the provider asset library."),
		mcp.WithString("asset_id", mcp.Required(), mcp.Description("ID of the asset to delete")),
	), deleteAssetHandler(svcs.Assets))

	s.AddTool(mcp.NewTool("list_folders",
		mcp.WithDescription("List folders in the provider workspace."),
	), listFoldersHandler(svcs.Folders))

	s.AddTool(mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder in the provider workspace."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new folder")),
	), createFolderHandler(svcs.Folders))

	s.AddTool(mcp.NewTool("rename_folder",
		mcp.WithDescription("Rename a folder in the provider workspace."),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("ID of the folder")),
		mcp.WithString("name", mcp.Required(), mcp.Description("New name for the folder")),
	), renameFolderHandler(svcs.Folders))

	s.AddTool(mcp.NewTool("trash_folder",
		mcp.WithDescription("Move a folder to the trash."),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("ID of the folder")),
	), trashFolderHandler(svcs.Folders))

	s.AddTool(mcp.NewTool("restore_folder",
		mcp.WithDescription("Restore a folder from the trash."),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("ID of the folder")),
	), restoreFolderHandler(svcs.Folders))
}

func uploadAssetHandler(svc port.AssetLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := req.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		asset, err := svc.UploadAsset(ctx, filePath)
		if err != nil {
			return toolError("could not upload asset", err)
		}
		return jsonResult(asset)
	}
}

func listAssetsHandler(svc port.AssetLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		assets, err := svc.ListAssets(ctx)
		if err != nil {
			return toolError("could not list assets", err)
		}
		return jsonResult(map[string][]model.Asset{"assets": assets})
	}
}

func deleteAssetHandler(svc port.AssetLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		assetID, err := req.RequireString("asset_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteAsset(ctx, assetID); err != nil {
			return toolError("could not delete asset", err)
		}
		return mcp.NewToolResultText("asset deleted"), nil
	}
}

func listFoldersHandler(svc port.FolderLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folders, err := svc.ListFolders(ctx)
		if err != nil {
			return toolError("could not list folders", err)
		}
		return jsonResult(map[string][]model.Folder{"folders": folders})
	}
}

func createFolderHandler(svc port.FolderLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		folder, err := svc.CreateFolder(ctx, name)
		if err != nil {
			return toolError("could not create folder", err)
		}
		return jsonResult(folder)
	}
}

func renameFolderHandler(svc port.FolderLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderID, err := req.RequireString("folder_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		folder, err := svc.RenameFolder(ctx, folderID, name)
		if err != nil {
			return toolError("could not rename folder", err)
		}
		return jsonResult(folder)
	}
}

func trashFolderHandler(svc port.FolderLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderID, err := req.RequireString("folder_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.TrashFolder(ctx, folderID); err != nil {
			return toolError("could not trash folder", err)
		}
		return mcp.NewToolResultText("folder trashed"), nil
	}
}

func restoreFolderHandler(svc port.FolderLibrary) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderID, err := req.RequireString("folder_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.RestoreFolder(ctx, folderID); err != nil {
			return toolError("could not restore folder", err)
		}
		return mcp.NewToolResultText("folder restored"), nil
	}
}
