package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_open", "image_adjust").
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

	log := s.log.WithField("tool", params.Name)
	log.Debug("Tool call")

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.WithError(err).Warn("Tool execution failed")
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session
	case "image_open":
		return s.handleImageOpen(args)
	case "image_save":
		return s.handleImageSave(args)

	// Editing
	case "image_set_params":
		return s.handleImageSetParams(args)
	case "image_render":
		return s.handleImageRender(args)
	case "image_adjust":
		return s.handleImageAdjust(args)
	case "image_reset":
		return s.handleImageReset(args)
	case "image_undo":
		return s.handleImageUndo(args)

	// Inspection
	case "image_preview":
		return s.handleImagePreview(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_histogram":
		return s.handleImageHistogram(args)

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

// decodeArgs unmarshals tool arguments into v. Tools without required
// arguments may be called with no arguments at all.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(args)) == 0 || bytes.Equal(bytes.TrimSpace(args), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// StateResult describes the editor after an editing tool ran.
type StateResult struct {
	Loaded  bool          `json:"loaded"`
	Params  editor.Params `json:"params"`
	Width   int           `json:"width,omitempty"`
	Height  int           `json:"height,omitempty"`
	CanUndo bool          `json:"can_undo"`
}

// UndoResult is StateResult plus whether a snapshot was restored.
type UndoResult struct {
	StateResult
	Restored bool `json:"restored"`
}

// InfoResult describes the loaded image and the current edit.
type InfoResult struct {
	Original *imaging.Info `json:"original"`
	Current  *imaging.Info `json:"current"`
	Params   editor.Params `json:"params"`
	CanUndo  bool          `json:"can_undo"`
}

// SaveResult reports a written file.
type SaveResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) state() StateResult {
	st := StateResult{
		Loaded:  s.editor.HasImage(),
		Params:  s.editor.Params(),
		CanUndo: s.editor.CanUndo(),
	}
	if cur := s.editor.Current(); cur != nil {
		st.Width = cur.Bounds().Dx()
		st.Height = cur.Bounds().Dy()
	}
	return st
}

// buffer selects the image a read-only tool works on.
func (s *Server) buffer(source string) (*image.NRGBA, error) {
	if !s.editor.HasImage() {
		return nil, editor.ErrNoImage
	}
	switch source {
	case "", "current":
		return s.editor.Current(), nil
	case "original":
		return s.editor.Original(), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want current or original)", source)
	}
}

// === Session Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (a pathArgs) validate() error {
	if a.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (s *Server) handleImageOpen(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := s.editor.Load(a.Path); err != nil {
		return nil, err
	}
	return s.state(), nil
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := s.editor.Save(a.Path); err != nil {
		return nil, err
	}

	format, _ := imaging.FormatFromPath(a.Path)
	cur := s.editor.Current()
	return &SaveResult{
		Path:   a.Path,
		Format: format.String(),
		Width:  cur.Bounds().Dx(),
		Height: cur.Bounds().Dy(),
	}, nil
}

// === Editing Handlers ===

// decodeParams reads a full parameter set. Fields left out keep their
// identity value, so {} means "no adjustment".
func decodeParams(args json.RawMessage) (editor.Params, error) {
	p := editor.DefaultParams()
	if err := decodeArgs(args, &p); err != nil {
		return p, err
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Server) handleImageSetParams(args json.RawMessage) (interface{}, error) {
	p, err := decodeParams(args)
	if err != nil {
		return nil, err
	}
	s.editor.SetParams(p)
	return s.state(), nil
}

func (s *Server) handleImageRender(args json.RawMessage) (interface{}, error) {
	s.editor.Render()
	return s.state(), nil
}

// handleImageAdjust is one slider event: new params followed by a render.
func (s *Server) handleImageAdjust(args json.RawMessage) (interface{}, error) {
	p, err := decodeParams(args)
	if err != nil {
		return nil, err
	}
	s.editor.SetParams(p)
	s.editor.Render()

	s.log.WithFields(logrus.Fields{
		"brightness": p.Brightness,
		"contrast":   p.Contrast,
		"saturation": p.Saturation,
		"rotation":   p.Rotation,
	}).Debug("Adjusted")

	return s.state(), nil
}

func (s *Server) handleImageReset(args json.RawMessage) (interface{}, error) {
	s.editor.Reset()
	return s.state(), nil
}

func (s *Server) handleImageUndo(args json.RawMessage) (interface{}, error) {
	restored := s.editor.Undo()
	return &UndoResult{StateResult: s.state(), Restored: restored}, nil
}

// === Inspection Handlers ===

type imagePreviewArgs struct {
	MaxWidth    int    `json:"max_width"`
	MaxHeight   int    `json:"max_height"`
	GridSpacing int    `json:"grid_spacing"`
	GridColor   string `json:"grid_color"`
	Source      string `json:"source"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.MaxWidth == 0 {
		a.MaxWidth = s.cfg.Preview.MaxWidth
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = s.cfg.Preview.MaxHeight
	}
	if a.GridColor == "" {
		a.GridColor = s.cfg.Preview.GridColor
	}

	img, err := s.buffer(a.Source)
	if err != nil {
		return nil, err
	}
	return imaging.Preview(img, imaging.PreviewOptions{
		MaxWidth:    a.MaxWidth,
		MaxHeight:   a.MaxHeight,
		GridSpacing: a.GridSpacing,
		GridColor:   a.GridColor,
	})
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	if !s.editor.HasImage() {
		return nil, editor.ErrNoImage
	}
	return &InfoResult{
		Original: imaging.Describe(s.editor.Original(), s.editor.SourceFormat()),
		Current:  imaging.Describe(s.editor.Current(), ""),
		Params:   s.editor.Params(),
		CanUndo:  s.editor.CanUndo(),
	}, nil
}

type imageSampleColorArgs struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Source string `json:"source"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.buffer(a.Source)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type sourceArgs struct {
	Source string `json:"source"`
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.buffer(a.Source)
	if err != nil {
		return nil, err
	}
	return imaging.ChannelHistogram(img), nil
}
