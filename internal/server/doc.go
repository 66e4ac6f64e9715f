// Package server implements the MCP (Model Context Protocol) server for
// solving word search puzzles.
//
// The server holds exactly one puzzle session. A client loads an image,
// selects the letter grid on the display surface, and asks for words; the
// server answers with grid matches and solution lines in display
// coordinates, optionally rendered over the image.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Puzzle Setup:
//   - puzzle_load: Load the puzzle image and size the display
//   - puzzle_select: Select the grid (display space) and read it with OCR
//   - puzzle_set_grid: Replace the grid by hand
//   - puzzle_set_words: Replace the word bank
//   - puzzle_resize: Resize the display surface
//
// Solving:
//   - puzzle_search: Find one word without highlighting it
//   - puzzle_solve: Highlight words and return their segments
//   - puzzle_render: Draw the highlighted words over the image
//   - puzzle_clear: Drop highlights, or the whole puzzle
//
// Inspection:
//   - puzzle_state: Snapshot of the session
//   - ocr_info: Tesseract availability
//
// Tools must be called in order: an image before a selection, a selection
// before solving. Calls out of order fail with the session's ErrNoImage,
// ErrNoSelection or ErrNoGrid.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed tools/call
//     params) or -32601 (unknown method)
//   - message: Human-readable error description
//   - data: The Go error string
//
// A word that is not in the grid is not an error: puzzle_search and
// puzzle_solve report it with found=false.
//
// # Usage
//
//	srv := server.New(server.Options{Version: version})
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
