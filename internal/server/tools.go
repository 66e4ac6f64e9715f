package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func rectSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Puzzle Setup
		{
			Name:        "puzzle_load",
			Description: "Load a puzzle image and start a new puzzle. The display surface is sized to the configured height, keeping the aspect ratio. Clears any previous grid, words and highlights.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"display_height": intProp("Optional display height in pixels. Default from config"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "puzzle_select",
			Description: "Select the letter grid in display coordinates and read it with OCR. Corners may be given in any order. Pass rows to supply the letters yourself and skip OCR. Pass words_region to read the word list as well.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x1": intProp("First corner X (display pixels)"),
					"y1": intProp("First corner Y (display pixels)"),
					"x2": intProp("Opposite corner X (display pixels)"),
					"y2": intProp("Opposite corner Y (display pixels)"),
					"rows": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Optional grid rows, top to bottom. Skips grid OCR",
					},
					"scanned":      rectSchema("Optional letter bounding box in image pixels relative to the selection. Only used with rows; defaults to the whole selection"),
					"words_region": rectSchema("Optional display-space region holding the word list, read with OCR"),
				},
				"required": []string{"x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "puzzle_set_grid",
			Description: "Replace the grid, e.g. to correct OCR mistakes. Letters are upper-cased, spaces dropped and '1' read as 'I'. Clears highlights; the selection is kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"rows": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Grid rows, top to bottom",
					},
				},
				"required": []string{"rows"},
			},
		},
		{
			Name:        "puzzle_set_words",
			Description: "Replace the word bank. Words are normalized like grid rows; duplicates are kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"words": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Words to find",
					},
				},
				"required": []string{"words"},
			},
		},
		{
			Name:        "puzzle_resize",
			Description: "Resize the display surface. The selection and highlighted segments follow the image. Omit width to keep the image aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  intProp("Optional display width in pixels"),
					"height": intProp("Display height in pixels"),
				},
				"required": []string{"height"},
			},
		},

		// Solving
		{
			Name:        "puzzle_search",
			Description: "Find every placement of one word in the grid. A word that is not present returns found=false. Does not change the highlights.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"word": map[string]interface{}{
						"type":        "string",
						"description": "Word to find",
					},
				},
				"required": []string{"word"},
			},
		},
		{
			Name:        "puzzle_solve",
			Description: "Highlight words and return their solution segments in display coordinates. Replaces earlier highlights. Without words, the whole word bank is used.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"words": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Optional words to highlight. Default: the word bank",
					},
					"render": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the rendered overlay as base64 PNG",
						"default":     false,
					},
					"outline": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline the selection in the rendered image",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "puzzle_render",
			Description: "Render the display-scaled image with the highlighted words drawn over it, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"outline": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline the selection",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "puzzle_clear",
			Description: "Remove all highlights. With all=true, forget the whole puzzle including the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"all": map[string]interface{}{
						"type":        "boolean",
						"description": "Reset the whole session",
						"default":     false,
					},
				},
			},
		},

		// Inspection
		{
			Name:        "puzzle_state",
			Description: "Report the current puzzle: image and display sizes, selection, grid, words, cell size and highlights.",
			InputSchema: noArgs(),
		},
		{
			Name:        "ocr_info",
			Description: "Report whether Tesseract OCR is available and its version.",
			InputSchema: noArgs(),
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
