package server

import (
	"encoding/json"
	"fmt"

	"github.com/tdhoang/color-tools-mcp/internal/colorspace"
	"github.com/tdhoang/color-tools-mcp/internal/extraction"
	"github.com/tdhoang/color-tools-mcp/internal/imaging"
	"github.com/tdhoang/color-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads pixel buffers from cache as needed
//  4. Calls the appropriate imaging/palette/colorspace function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Sampling
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_center_color":
		return s.handleImageCenterColor(args)
	case "image_region_average":
		return s.handleImageRegionAverage(args)
	case "image_grid_sample":
		return s.handleImageGridSample(args)

	// Palette Extraction
	case "image_palette":
		return s.handleImagePalette(args)

	// Region Preview
	case "image_preview":
		return s.handleImagePreview(args)

	// Color Utilities
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_name":
		return s.handleColorName(args)

	// Cache Management
	case "cache_clear":
		return s.handleCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ColorReport is the full description of one sampled color: every supported
// representation plus the nearest color name and readability hints.
type ColorReport struct {
	colorspace.Expansion
	Alpha        int    `json:"alpha"`
	Name         string `json:"name"`
	NameVi       string `json:"name_vi"`
	Brightness   int    `json:"brightness"`
	ContrastText string `json:"contrast_text"`
}

// report expands a raw sample into a ColorReport.
func (s *Server) report(sample imaging.Sample) ColorReport {
	rgb := colorspace.RGB{R: int(sample.R), G: int(sample.G), B: int(sample.B)}
	entry := s.namer.NearestEntry(rgb.Hex())
	return ColorReport{
		Expansion:    colorspace.Expand(rgb),
		Alpha:        int(sample.A),
		Name:         entry.Name,
		NameVi:       entry.NameVi,
		Brightness:   rgb.Brightness(),
		ContrastText: rgb.ContrastText(),
	}
}

// === Basic Image Information Handlers ===

type imageURIArgs struct {
	URI string `json:"uri"`
}

type imageInfoResult struct {
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageURIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}
	return imageInfoResult{URI: a.URI, Width: buf.Width, Height: buf.Height}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageURIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	w, h, err := s.cache.Dimensions(a.URI)
	if err != nil {
		return nil, err
	}
	return imageInfoResult{URI: a.URI, Width: w, Height: h}, nil
}

// === Color Sampling Handlers ===

type imageSampleColorArgs struct {
	URI string `json:"uri"`
	X   int    `json:"x"`
	Y   int    `json:"y"`
}

type sampleColorResult struct {
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Method string      `json:"method"`
	Color  ColorReport `json:"color"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	ext := extraction.Select(s.cache, a.URI)
	sample, err := ext.ColorAt(a.URI, a.X, a.Y)
	if err != nil {
		return nil, err
	}

	method := "direct"
	if _, ok := ext.(*extraction.Heuristic); ok {
		method = "heuristic"
	}
	return sampleColorResult{X: a.X, Y: a.Y, Method: method, Color: s.report(*sample)}, nil
}

type imageSampleColorsMultiArgs struct {
	URI    string `json:"uri"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

type labeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorReport `json:"color"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	samples, err := imaging.SamplePointsMulti(buf, points)
	if err != nil {
		return nil, err
	}

	results := make([]labeledColorResult, len(samples))
	for i, ls := range samples {
		results[i] = labeledColorResult{
			Label: ls.Label,
			X:     ls.X,
			Y:     ls.Y,
			Color: s.report(ls.Color),
		}
	}
	return results, nil
}

func (s *Server) handleImageCenterColor(args json.RawMessage) (interface{}, error) {
	var a imageURIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}
	sample, err := imaging.CenterColor(buf)
	if err != nil {
		return nil, err
	}
	return sampleColorResult{
		X:      buf.Width / 2,
		Y:      buf.Height / 2,
		Method: "direct",
		Color:  s.report(*sample),
	}, nil
}

type imageRegionAverageArgs struct {
	URI    string `json:"uri"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius int    `json:"radius"`
}

func (s *Server) handleImageRegionAverage(args json.RawMessage) (interface{}, error) {
	var a imageRegionAverageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 1
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}
	sample, err := imaging.RegionAverage(buf, a.X, a.Y, a.Radius)
	if err != nil {
		return nil, err
	}
	return sampleColorResult{X: a.X, Y: a.Y, Method: "direct", Color: s.report(*sample)}, nil
}

type imageGridSampleArgs struct {
	URI      string `json:"uri"`
	GridSize int    `json:"grid_size"`
}

type gridSampleResult struct {
	GridSize int           `json:"grid_size"`
	Samples  []ColorReport `json:"samples"`
}

func (s *Server) handleImageGridSample(args json.RawMessage) (interface{}, error) {
	var a imageGridSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSize == 0 {
		a.GridSize = 3
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}

	samples := imaging.GridSample(buf, a.GridSize)
	reports := make([]ColorReport, len(samples))
	for i, sm := range samples {
		reports[i] = s.report(sm)
	}
	return gridSampleResult{GridSize: a.GridSize, Samples: reports}, nil
}

// === Palette Extraction Handlers ===

type imagePaletteArgs struct {
	URI        string `json:"uri"`
	Strategy   string `json:"strategy"`
	MaxColors  int    `json:"max_colors"`
	SampleRate int    `json:"sample_rate"`
	Quality    int    `json:"quality"`
}

type paletteEntry struct {
	palette.Cluster
	Name   string `json:"name"`
	NameVi string `json:"name_vi"`
}

type paletteResult struct {
	Strategy string         `json:"strategy"`
	Colors   []paletteEntry `json:"colors"`
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Strategy == "" {
		a.Strategy = string(palette.StrategyDominant)
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}

	clusters, err := palette.Extract(buf, palette.Strategy(a.Strategy), palette.Options{
		MaxColors:  a.MaxColors,
		SampleRate: a.SampleRate,
		Quality:    a.Quality,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]paletteEntry, len(clusters))
	for i, c := range clusters {
		entry := s.namer.NearestEntry(c.Hex)
		entries[i] = paletteEntry{Cluster: c, Name: entry.Name, NameVi: entry.NameVi}
	}
	return paletteResult{Strategy: a.Strategy, Colors: entries}, nil
}

// === Region Preview Handlers ===

type imagePreviewArgs struct {
	URI   string  `json:"uri"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	buf, err := s.cache.Load(a.URI)
	if err != nil {
		return nil, err
	}
	return imaging.Preview(buf, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

// === Color Utility Handlers ===

type colorConvertArgs struct {
	Value json.RawMessage `json:"value"`
	From  string          `json:"from"`
	To    string          `json:"to"`
}

type colorConvertResult struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Result interface{} `json:"result"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	value, err := decodeColorValue(a.Value, colorspace.Format(a.From))
	if err != nil {
		return nil, err
	}
	result, err := colorspace.Convert(value, colorspace.Format(a.From), colorspace.Format(a.To))
	if err != nil {
		return nil, err
	}
	return colorConvertResult{From: a.From, To: a.To, Result: result}, nil
}

// decodeColorValue unmarshals the wire form of a color value into the
// concrete type Convert expects for the given source format.
func decodeColorValue(raw json.RawMessage, from colorspace.Format) (interface{}, error) {
	switch from {
	case colorspace.FormatHex:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("hex value must be a string: %w", err)
		}
		return s, nil
	case colorspace.FormatRGB:
		var c colorspace.RGB
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid rgb value: %w", err)
		}
		return c, nil
	case colorspace.FormatHSL:
		var c colorspace.HSL
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid hsl value: %w", err)
		}
		return c, nil
	case colorspace.FormatHSV:
		var c colorspace.HSV
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid hsv value: %w", err)
		}
		return c, nil
	case colorspace.FormatCMYK:
		var c colorspace.CMYK
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid cmyk value: %w", err)
		}
		return c, nil
	case colorspace.FormatYUV:
		var c colorspace.YUV
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid yuv value: %w", err)
		}
		return c, nil
	case colorspace.FormatRYB:
		var c colorspace.RYB
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid ryb value: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", colorspace.ErrUnsupportedFormat, from)
	}
}

type colorNameArgs struct {
	Hex  string `json:"hex"`
	Lang string `json:"lang"`
}

type colorNameResult struct {
	Hex     string `json:"hex"`
	Nearest string `json:"nearest"`
	Name    string `json:"name"`
	NameEn  string `json:"name_en"`
	NameVi  string `json:"name_vi"`
}

func (s *Server) handleColorName(args json.RawMessage) (interface{}, error) {
	var a colorNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Lang == "" {
		a.Lang = "en"
	}
	entry := s.namer.NearestEntry(a.Hex)
	return colorNameResult{
		Hex:     a.Hex,
		Nearest: entry.Hex,
		Name:    s.namer.Nearest(a.Hex, a.Lang),
		NameEn:  entry.Name,
		NameVi:  entry.NameVi,
	}, nil
}

// === Cache Management Handlers ===

type cacheClearResult struct {
	Cleared int `json:"cleared"`
}

func (s *Server) handleCacheClear(args json.RawMessage) (interface{}, error) {
	n := s.cache.Len()
	s.cache.Clear()
	return cacheClearResult{Cleared: n}, nil
}
