package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// emptySchema is the input schema of tools that take no arguments.
func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// paramsSchema describes the full adjustment parameter set.
func paramsSchema() map[string]interface{} {
	factor := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "number",
			"description": desc,
			"minimum":     0.0,
			"maximum":     2.0,
			"default":     1.0,
		}
	}
	crop := func(side string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "number",
			"description": "Fraction of the image removed from the " + side + " side",
			"minimum":     0.0,
			"maximum":     0.4,
			"default":     0.0,
		}
	}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"brightness": factor("Brightness factor. 0 is black, 1 unchanged"),
			"contrast":   factor("Contrast factor. 0 is flat gray, 1 unchanged"),
			"saturation": factor("Saturation factor. 0 is grayscale, 1 unchanged"),
			"rotation": map[string]interface{}{
				"type":        "integer",
				"description": "Rotation in degrees, counter-clockwise. The canvas grows to fit and new corners are transparent",
				"minimum":     -180,
				"maximum":     180,
				"default":     0,
			},
			"crop_left":   crop("left"),
			"crop_top":    crop("top"),
			"crop_right":  crop("right"),
			"crop_bottom": crop("bottom"),
		},
	}
}

func sourceProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Which buffer to read: the edited image or the untouched original",
		"enum":        []string{"current", "original"},
		"default":     "current",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session
		{
			Name:        "image_open",
			Description: "Open an image file for editing. Replaces any image already open, resets all adjustments and clears undo history.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, TIFF or WEBP)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_save",
			Description: "Save the edited image. The format follows the file extension: .png and .webp keep transparency, .jpg/.jpeg are written opaque at quality 95.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute destination path ending in .png, .jpg, .jpeg or .webp",
					},
				},
				"required": []string{"path"},
			},
		},

		// Editing
		{
			Name:        "image_set_params",
			Description: "Replace the adjustment parameters without rendering. Omitted fields take their neutral value.",
			InputSchema: paramsSchema(),
		},
		{
			Name:        "image_render",
			Description: "Render the current parameters onto a fresh copy of the original image. The previous result can be restored with image_undo.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "image_adjust",
			Description: "Set the adjustment parameters and render in one step. Omitted fields take their neutral value. Crops that would leave less than 20 pixels are ignored.",
			InputSchema: paramsSchema(),
		},
		{
			Name:        "image_reset",
			Description: "Discard all adjustments and show the original image again. Can be undone with image_undo.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "image_undo",
			Description: "Restore the image from before the last render or reset. Only one step is kept, and parameters are not rolled back.",
			InputSchema: emptySchema(),
		},

		// Inspection
		{
			Name:        "image_preview",
			Description: "Return a scaled PNG preview of the image as base64, optionally with a coordinate grid. Previews never upscale and never affect the edit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum preview width in pixels. Defaults to the configured viewport",
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum preview height in pixels. Defaults to the configured viewport",
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Draw grid lines every N preview pixels. 0 for no grid",
						"default":     0,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (#RGB, #RRGGBB or #RRGGBBAA)",
					},
					"source": sourceProperty(),
				},
			},
		},
		{
			Name:        "image_info",
			Description: "Describe the original and edited image: dimensions, source format, transparency, active parameters and undo availability.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of a single pixel as hex, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
					"source": sourceProperty(),
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_histogram",
			Description: "Compute 256-bin histograms of the red, green, blue and alpha channels plus mean luminance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
				},
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
