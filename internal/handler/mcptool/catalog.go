package mcptool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func registerCatalogTools(s *server.MCPServer, svcs Services) {
	s.AddTool(mcp.NewTool("list_avatars",
		mcp.WithDescription("List all avatars available to the account."),
	), listAvatarsHandler(svcs.Avatars))

	s.AddTool(mcp.NewTool("avatar_details",
		mcp.WithDescription("Get details for one avatar, including preview URLs."),
		mcp.WithString("avatar_id", mcp.Required(), mcp.Description("ID of the avatar")),
	), avatarDetailsHandler(svcs.Avatars))

	s.AddTool(mcp.NewTool("list_avatar_groups",
		mcp.WithDescription("List avatar groups in the account."),
		mcp.WithBoolean("include_public", mcp.Description("Include public avatar groups, defaults to false")),
	), listAvatarGroupsHandler(svcs.Avatars))

	s.AddTool(mcp.NewTool("list_avatars_in_group",
		mcp.WithDescription("List the avatars belonging to one avatar group."),
		mcp.WithString("group_id", mcp.Required(), mcp.Description("ID of the avatar group")),
	), listAvatarsInGroupHandler(svcs.Avatars))

	s.AddTool(mcp.NewTool("list_voices",
		mcp.WithDescription("List available voices. Capped to the first 100 voices."),
	), listVoicesHandler(svcs.Voices))

	s.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List video templates available to the account."),
	), listTemplatesHandler(svcs.Templates))

	s.AddTool(mcp.NewTool("template_details",
		mcp.WithDescription("Get details for one template, including its variables."),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("ID of the template")),
	), templateDetailsHandler(svcs.Templates))
}

func listAvatarsHandler(svc port.AvatarCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		avatars, err := svc.ListAvatars(ctx)
		if err != nil {
			return toolError("could not list avatars", err)
		}
		return jsonResult(map[string][]model.Avatar{"avatars": avatars})
	}
}

func avatarDetailsHandler(svc port.AvatarCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		avatarID, err := req.RequireString("avatar_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		details, err := svc.GetAvatarDetails(ctx, avatarID)
		if err != nil {
			return toolError("could not get avatar details", err)
		}
		return jsonResult(details)
	}
}

func listAvatarGroupsHandler(svc port.AvatarCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.ListAvatarGroups(ctx, req.GetBool("include_public", false))
		if err != nil {
			return toolError("could not list avatar groups", err)
		}
		return jsonResult(out)
	}
}

func listAvatarsInGroupHandler(svc port.AvatarCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groupID, err := req.RequireString("group_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		avatars, err := svc.ListAvatarsInGroup(ctx, groupID)
		if err != nil {
			return toolError("could not list avatars in group", err)
		}
		return jsonResult(map[string][]model.GroupAvatar{"avatar_list": avatars})
	}
}

func listVoicesHandler(svc port.VoiceCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		voices, err := svc.ListVoices(ctx)
		if err != nil {
			return toolError("could not list voices", err)
		}
		return jsonResult(map[string][]model.VoiceInfo{"voices": voices})
	}
}

func listTemplatesHandler(svc port.TemplateCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templates, err := svc.ListTemplates(ctx)
		if err != nil {
			return toolError("could not list templates", err)
		}
		return jsonResult(map[string][]model.Template{"templates": templates})
	}
}

func templateDetailsHandler(svc port.TemplateCatalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templateID, err := req.RequireString("template_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		details, err := svc.GetTemplateDetails(ctx, templateID)
		if err != nil {
			return toolError("could not get template details", err)
		}
		return jsonResult(details)
	}
}
