package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mleroux/videogen-ms-go/internal/port"
	"github.com/mleroux/videogen-ms-go/internal/usecase/video"
)

func registerVideoTools(s *server.MCPServer, svcs Services) {
	s.AddTool(mcp.NewTool("generate_video",
		mcp.WithDescription("Submit an avatar video render. Returns the video ID to poll with video_status."),
		mcp.WithString("avatar_id", mcp.Required(), mcp.Description("ID of the avatar presenting the video")),
		mcp.WithString("voice_id", mcp.Required(), mcp.Description("ID of the voice reading the script")),
		mcp.WithString("input_text", mcp.Required(), mcp.Description("Script the avatar will speak")),
		mcp.WithString("title", mcp.Description("Optional title shown in the provider dashboard")),
		mcp.WithObject("background",
			mcp.Description("Optional background: {type: color|image|video, value: hex color, image_asset_id, video_asset_id, play_style: fit_to_scene|freeze|loop|full_video}"),
		),
		mcp.WithNumber("width", mcp.Description("Output width in pixels, defaults to 1280")),
		mcp.WithNumber("height", mcp.Description("Output height in pixels, defaults to 720")),
		mcp.WithBoolean("test", mcp.Description("Render in test mode, watermarked but free")),
		mcp.WithBoolean("caption", mcp.Description("Burn captions into the video")),
		mcp.WithString("callback_id", mcp.Description("Opaque ID echoed back in provider callbacks")),
	), generateVideoHandler(svcs.Generator))

	s.AddTool(mcp.NewTool("video_status",
		mcp.WithDescription("Get the current state of a render: submitted, processing, completed or failed. Completed videos include download URLs."),
		mcp.WithString("video_id", mcp.Required(), mcp.Description("ID returned by generate_video or generate_from_template")),
	), videoStatusHandler(svcs.StatusGetter))

	s.AddTool(mcp.NewTool("list_videos",
		mcp.WithDescription("List videos in the account, newest first. Pass the returned next_token to fetch the next page."),
		mcp.WithString("token", mcp.Description("Pagination token from a previous call")),
	), listVideosHandler(svcs.Lister))

	s.AddTool(mcp.NewTool("generate_from_template",
		mcp.WithDescription("Render a template with variable replacements. Returns the video ID to poll with video_status."),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("ID of the template to render")),
		mcp.WithString("title", mcp.Description("Optional title for the rendered video")),
		mcp.WithObject("variables", mcp.Description("Map of template variable names to replacement values")),
		mcp.WithBoolean("test", mcp.Description("Render in test mode, watermarked but free")),
		mcp.WithBoolean("caption", mcp.Description("Burn captions into the video")),
	), generateFromTemplateHandler(svcs.TemplateGenerator))
}

func generateVideoHandler(svc port.VideoGenerator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		avatarID, err := req.RequireString("avatar_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		voiceID, err := req.RequireString("voice_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		inputText, err := req.RequireString("input_text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		in := port.GenerateVideoInput{
			Title:      req.GetString("title", ""),
			AvatarID:   avatarID,
			VoiceID:    voiceID,
			InputText:  inputText,
			Width:      req.GetInt("width", 0),
			Height:     req.GetInt("height", 0),
			Test:       req.GetBool("test", false),
			Caption:    req.GetBool("caption", false),
			CallbackID: req.GetString("callback_id", ""),
		}

		if raw, ok := req.GetArguments()["background"]; ok && raw != nil {
			bgIn, err := decodeBackground(raw)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid background: %v", err)), nil
			}
			bg, err := video.ParseBackground(bgIn)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid background: %v", err)), nil
			}
			in.Background = bg
		}

		out, err := svc.GenerateVideo(ctx, in)
		if err != nil {
			return toolError("could not submit video generation", err)
		}
		return jsonResult(out)
	}
}

// decodeBackground converts the raw tool argument into a background
// descriptor through a JSON round trip.
func decodeBackground(raw any) (video.BackgroundInput, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return video.BackgroundInput{}, err
	}
	var in video.BackgroundInput
	if err := json.Unmarshal(data, &in); err != nil {
		return video.BackgroundInput{}, err
	}
	return in, nil
}

func videoStatusHandler(svc port.StatusGetter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoID, err := req.RequireString("video_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		status, err := svc.GetVideoStatus(ctx, videoID)
		if err != nil {
			return toolError("could not get video status", err)
		}
		return jsonResult(status)
	}
}

func listVideosHandler(svc port.VideoLister) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.ListVideos(ctx, req.GetString("token", ""))
		if err != nil {
			return toolError("could not list videos", err)
		}
		return jsonResult(out)
	}
}

func generateFromTemplateHandler(svc port.TemplateVideoGenerator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templateID, err := req.RequireString("template_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		in := port.GenerateFromTemplateInput{
			TemplateID: templateID,
			Title:      req.GetString("title", ""),
			Test:       req.GetBool("test", false),
			Caption:    req.GetBool("caption", false),
		}
		if raw, ok := req.GetArguments()["variables"]; ok && raw != nil {
			vars, ok := raw.(map[string]any)
			if !ok {
				return mcp.NewToolResultError("variables must be an object"), nil
			}
			in.Variables = vars
		}

		out, err := svc.GenerateFromTemplate(ctx, in)
		if err != nil {
			return toolError("could not submit template generation", err)
		}
		return jsonResult(out)
	}
}
