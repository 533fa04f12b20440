package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file into the pixel buffer cache and return its dimensions. Subsequent sampling calls on the same URI reuse the cached buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
				},
				"required": []string{"uri"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
				},
				"required": []string{"uri"},
			},
		},

		// Color Sampling
		{
			Name:        "image_sample_color",
			Description: "Get the color at a specific pixel coordinate, expanded to hex, RGB, HSL, HSV, CMYK, YUV, Lab and RYB, with the nearest color name in English and Vietnamese. Falls back to a heuristic estimate when the image cannot be decoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"uri", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get colors at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"uri", "points"},
			},
		},
		{
			Name:        "image_center_color",
			Description: "Get the color at the geometric center of the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
				},
				"required": []string{"uri"},
			},
		},
		{
			Name:        "image_region_average",
			Description: "Average the colors in a square region centered on a pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Center X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Center Y coordinate",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Half-width of the square region (default 1, a 3x3 area)",
						"default":     1,
					},
				},
				"required": []string{"uri", "x", "y"},
			},
		},
		{
			Name:        "image_grid_sample",
			Description: "Sample colors at evenly spaced interior grid points across the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
					"grid_size": map[string]interface{}{
						"type":        "integer",
						"description": "Number of sample points per axis (default 3, a 3x3 grid)",
						"default":     3,
					},
				},
				"required": []string{"uri"},
			},
		},

		// Palette Extraction
		{
			Name:        "image_palette",
			Description: "Extract a color palette from the image. Strategies: 'dominant' ranks quantized colors by frequency, 'adaptive' clusters around grid-seeded means, 'perceptual' weights colors by luminance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
					"strategy": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"dominant", "adaptive", "perceptual"},
						"description": "Extraction strategy (default 'dominant')",
						"default":     "dominant",
					},
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of palette entries (default 5)",
						"default":     5,
					},
					"sample_rate": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel stride for the dominant strategy (default 1, every pixel)",
						"default":     1,
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "Quality level 1-5 for the adaptive strategy (default 3)",
						"default":     3,
					},
				},
				"required": []string{"uri"},
			},
		},

		// Region Preview
		{
			Name:        "image_preview",
			Description: "Crop a rectangular region and return it as base64-encoded PNG, optionally scaled. Use this to inspect an area before sampling it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"uri": map[string]interface{}{
						"type":        "string",
						"description": "Path or file:// URI of the image",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"uri", "x1", "y1", "x2", "y2"},
			},
		},

		// Color Utilities
		{
			Name:        "color_convert",
			Description: "Convert a color value between models: hex, rgb, hsl, hsv, cmyk, yuv, ryb, and lab (target only).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"description": "Color value in the source model. A string for hex (e.g. '#1A2B3C'), an object of components otherwise (e.g. {\"r\":26,\"g\":43,\"b\":60}).",
					},
					"from": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hex", "rgb", "hsl", "hsv", "cmyk", "yuv", "ryb"},
						"description": "Source color model",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hex", "rgb", "hsl", "hsv", "cmyk", "yuv", "lab", "ryb"},
						"description": "Target color model",
					},
				},
				"required": []string{"value", "from", "to"},
			},
		},
		{
			Name:        "color_name",
			Description: "Find the nearest named color for a hex value. Supports English and Vietnamese names.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color value (e.g. '#FF8800')",
					},
					"lang": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"en", "vi"},
						"description": "Name language (default 'en')",
						"default":     "en",
					},
				},
				"required": []string{"hex"},
			},
		},

		// Cache Management
		{
			Name:        "cache_clear",
			Description: "Evict all decoded pixel buffers from the cache.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
