package mcptool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

func registerAccountTools(s *server.MCPServer, svcs Services) {
	s.AddTool(mcp.NewTool("user_info",
		mcp.WithDescription("Get the authenticated account's identity."),
	), userInfoHandler(svcs.Account))

	s.AddTool(mcp.NewTool("remaining_credits",
		mcp.WithDescription("Get the account's remaining video credits. One credit is one minute of rendered video."),
	), remainingCreditsHandler(svcs.Account))
}

func userInfoHandler(svc port.AccountInfo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := svc.GetUserInfo(ctx)
		if err != nil {
			return toolError("could not get user info", err)
		}
		return jsonResult(info)
	}
}

func remainingCreditsHandler(svc port.AccountInfo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		credits, err := svc.GetRemainingCredits(ctx)
		if err != nil {
			return toolError("could not get remaining credits", err)
		}
		return jsonResult(map[string]int{"remaining_credits": credits})
	}
}
