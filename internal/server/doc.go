// Package server implements the MCP (Model Context Protocol) server that
// drives the image editor.
//
// The server owns one editor.Editor and exposes its operations as tools, so
// an MCP client acts as the user interface: it opens an image, moves the
// adjustment "sliders" with image_adjust, looks at the result with
// image_preview and saves it.
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
// Requests are handled one at a time in arrival order.
//
// # Available Tools
//
// Session:
//   - image_open: Load an image and start a new edit
//   - image_save: Write the edited image (PNG, JPEG or WEBP)
//
// Editing:
//   - image_set_params: Replace parameters without rendering
//   - image_render: Render parameters onto the original
//   - image_adjust: Set parameters and render
//   - image_reset: Back to the original
//   - image_undo: Restore the previous render (one level)
//
// Inspection:
//   - image_preview: Scaled base64 PNG with optional grid
//   - image_info: Dimensions, format, alpha and parameters
//   - image_sample_color: Color at a pixel
//   - image_histogram: Per-channel histograms
//
// Parameter ranges are checked here, not in the editor: factors in [0, 2],
// rotation in [-180, 180], crop fractions in [0, 0.4]. A request outside
// them fails and leaves the edit untouched.
//
// Without an open image, image_render, image_reset and image_undo succeed
// and report loaded=false; the other tools fail with "no image loaded".
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal(err)
//	}
package server
