package mcptool

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

const (
	serverName    = "videogen-ms"
	serverVersion = "1.0.0"

	instructions = "Tools for generating avatar videos through the HeyGen API. " +
		"Submit a render with generate_video or generate_from_template, then " +
		"poll video_status until the state is completed or failed. Browse " +
		"avatars, voices and templates before generating, and manage uploaded " +
		"assets and folders with the library tools."
)

// Services bundles every use case the tool surface exposes.
type Services struct {
	Generator         port.VideoGenerator
	TemplateGenerator port.TemplateVideoGenerator
	StatusGetter      port.StatusGetter
	Lister            port.VideoLister
	Avatars           port.AvatarCatalog
	Voices            port.VoiceCatalog
	Templates         port.TemplateCatalog
	Assets            port.AssetLibrary
	Folders           port.FolderLibrary
	Account           port.AccountInfo
}

// NewServer builds the MCP server and registers every tool on it.
func NewServer(svcs Services) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
	)

	registerVideoTools(s, svcs)
	registerCatalogTools(s, svcs)
	registerLibraryTools(s, svcs)
	registerAccountTools(s, svcs)

	return s
}

// jsonResult marshals v and returns it as a text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError wraps a failed operation as a tool-level error so the
// caller sees the message instead of a protocol failure.
func toolError(action string, err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err)), nil
}
