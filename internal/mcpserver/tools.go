package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed by the server.
const (
	ToolRGBToHSL        = "rgb_to_hsl"
	ToolHSLToRGB        = "hsl_to_rgb"
	ToolScaleLuminosity = "scale_luminosity"
	ToolStackPush       = "stack_push"
	ToolStackPop        = "stack_pop"
	ToolStackList       = "stack_list"
)

func channelParam(name, desc string) mcp.ToolOption {
	return mcp.WithNumber(name,
		mcp.Required(),
		mcp.Description(desc),
		mcp.Min(0),
		mcp.Max(255),
	)
}

// Tools returns every tool with its handler.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolRGBToHSL,
				mcp.WithDescription("Convert an 8-bit RGB colour to HSL. Hue is returned in sextants (multiply by 60 for degrees); hueDegrees is provided for convenience."),
				channelParam("red", "Red channel, 0-255"),
				channelParam("green", "Green channel, 0-255"),
				channelParam("blue", "Blue channel, 0-255"),
			),
			Handler: s.handleRGBToHSL,
		},
		{
			Tool: mcp.NewTool(ToolHSLToRGB,
				mcp.WithDescription("Convert HSL to an 8-bit RGB colour. Hue must be in sextants exactly as rgb_to_hsl returns it, not degrees."),
				mcp.WithNumber("hue", mcp.Required(), mcp.Description("Hue in sextants (one unit is 60 degrees)")),
				mcp.WithNumber("saturation", mcp.Required(), mcp.Description("Saturation, 0-1"), mcp.Min(0), mcp.Max(1)),
				mcp.WithNumber("luminosity", mcp.Required(), mcp.Description("Luminosity, 0-1"), mcp.Min(0), mcp.Max(1)),
			),
			Handler: s.handleHSLToRGB,
		},
		{
			Tool: mcp.NewTool(ToolScaleLuminosity,
				mcp.WithDescription("Multiply a luminosity by a brightness factor"),
				mcp.WithNumber("luminosity", mcp.Required(), mcp.Description("Luminosity, 0-1")),
				mcp.WithNumber("factor", mcp.Required(), mcp.Description("Brightness factor")),
			),
			Handler: s.handleScaleLuminosity,
		},
		{
			Tool: mcp.NewTool(ToolStackPush,
				mcp.WithDescription("Save a colour on the settings stack (10 slots). Fails when the stack is full."),
				channelParam("red", "Red channel, 0-255"),
				channelParam("green", "Green channel, 0-255"),
				channelParam("blue", "Blue channel, 0-255"),
				mcp.WithNumber("brightness",
					mcp.Description("Brightness, 0-255 (default from configuration)"),
					mcp.Min(0),
					mcp.Max(255),
				),
			),
			Handler: s.handleStackPush,
		},
		{
			Tool: mcp.NewTool(ToolStackPop,
				mcp.WithDescription("Restore the most recently saved colour. An empty stack returns the stale bottom slot and empty=true."),
			),
			Handler: s.handleStackPop,
		},
		{
			Tool: mcp.NewTool(ToolStackList,
				mcp.WithDescription("List saved colours, bottom first"),
			),
			Handler: s.handleStackList,
		},
	}
}
