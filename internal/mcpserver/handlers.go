package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"rgbhsl/internal/colormodel"
	"rgbhsl/internal/settings"
)

type hslResponse struct {
	colormodel.HSL
	HueDegrees float32 `json:"hueDegrees"`
}

type rgbResponse struct {
	colormodel.RGB
	Hex string `json:"hex"`
}

type pushResponse struct {
	Pushed bool `json:"pushed"`
	Size   int  `json:"size"`
}

type popResponse struct {
	settings.Entry
	Hex   string `json:"hex"`
	Empty bool   `json:"empty"`
}

func (s *Server) handleRGBToHSL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := requireRGB(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	hsl := s.session.ToHSL(c)
	return jsonResult(hslResponse{HSL: hsl, HueDegrees: hsl.HueDegrees()})
}

func (s *Server) handleHSLToRGB(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var vals [3]float64
	for i, name := range []string{"hue", "saturation", "luminosity"} {
		v, err := request.RequireFloat(name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s parameter is required", name)), nil
		}
		vals[i] = v
	}
	c := s.session.ToRGB(colormodel.HSL{
		Hue:        float32(vals[0]),
		Saturation: float32(vals[1]),
		Luminosity: float32(vals[2]),
	})
	return jsonResult(rgbResponse{RGB: c, Hex: c.Hex()})
}

func (s *Server) handleScaleLuminosity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l, err := request.RequireFloat("luminosity")
	if err != nil {
		return mcp.NewToolResultError("luminosity parameter is required"), nil
	}
	f, err := request.RequireFloat("factor")
	if err != nil {
		return mcp.NewToolResultError("factor parameter is required"), nil
	}
	out := s.session.ScaleLuminosity(colormodel.HSL{Luminosity: float32(l)}, float32(f))
	return jsonResult(map[string]float32{"luminosity": out.Luminosity})
}

func (s *Server) handleStackPush(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := requireRGB(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	brightness, err := toChannel("brightness", request.GetFloat("brightness", float64(s.session.DefaultBrightness())))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !s.session.Push(c, brightness) {
		return mcp.NewToolResultError(fmt.Sprintf("stack full (%d entries)", s.session.Capacity())), nil
	}
	return jsonResult(pushResponse{Pushed: true, Size: len(s.session.Saved())})
}

func (s *Server) handleStackPop(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, ok := s.session.PopChecked()
	return jsonResult(popResponse{Entry: e, Hex: e.Color.Hex(), Empty: !ok})
}

func (s *Server) handleStackList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	saved := s.session.Saved()
	return jsonResult(map[string]interface{}{
		"entries":  saved,
		"size":     len(saved),
		"capacity": s.session.Capacity(),
	})
}

func requireRGB(request mcp.CallToolRequest) (colormodel.RGB, error) {
	var ch [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := request.RequireFloat(name)
		if err != nil {
			return colormodel.RGB{}, fmt.Errorf("%s parameter is required", name)
		}
		if ch[i], err = toChannel(name, v); err != nil {
			return colormodel.RGB{}, err
		}
	}
	return colormodel.RGB{Red: ch[0], Green: ch[1], Blue: ch[2]}, nil
}

func toChannel(name string, v float64) (uint8, error) {
	if v < 0 || v > 255 || v != math.Trunc(v) {
		return 0, fmt.Errorf("%s must be an integer between 0 and 255, got %v", name, v)
	}
	return uint8(v), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
