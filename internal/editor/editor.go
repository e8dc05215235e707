package editor

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	pix "github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Editor owns the editing state of one image: the untouched original, the
// currently rendered buffer, the active parameters and a one-step history.
//
// Editor is not safe for concurrent use. It is meant to be driven from a
// single event loop, one user action at a time.
type Editor struct {
	original *image.NRGBA
	current  *image.NRGBA
	params   Params
	history  History
	format   string

	log logrus.FieldLogger
}

// New creates an empty editor. A nil logger discards all output.
func New(log logrus.FieldLogger) *Editor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Editor{
		params: DefaultParams(),
		log:    log,
	}
}

// Load decodes the image file at path and starts a fresh editing session
// with it. On failure the previous state is kept and a *DecodeError is
// returned.
func (e *Editor) Load(path string) error {
	img, format, err := pix.Open(path)
	return e.load(path, img, format, err)
}

// LoadReader is Load for an in-memory or streamed source.
func (e *Editor) LoadReader(r io.Reader) error {
	img, format, err := pix.Decode(r)
	return e.load("reader", img, format, err)
}

func (e *Editor) load(source string, img *image.NRGBA, format string, err error) error {
	if err != nil {
		e.log.WithField("source", source).WithError(err).Warn("Image load failed")
		return &DecodeError{Source: source, Err: err}
	}

	e.original = img
	e.current = imaging.Clone(img)
	e.params = DefaultParams()
	e.history.Clear()
	e.format = format

	e.log.WithFields(logrus.Fields{
		"source": source,
		"format": format,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Info("Image loaded")

	return nil
}

// HasImage reports whether an image is loaded.
func (e *Editor) HasImage() bool {
	return e.original != nil
}

// Original returns the loaded image, or nil. Callers must not modify it.
func (e *Editor) Original() *image.NRGBA {
	return e.original
}

// Current returns the rendered image, or nil. Callers must not modify it.
func (e *Editor) Current() *image.NRGBA {
	return e.current
}

// Params returns the active parameters.
func (e *Editor) Params() Params {
	return e.params
}

// SourceFormat returns the format name the original was decoded from.
func (e *Editor) SourceFormat() string {
	return e.format
}

// CanUndo reports whether Undo would restore a snapshot.
func (e *Editor) CanUndo() bool {
	return !e.history.Empty()
}

// SetParams replaces the active parameters. Nothing is rendered until Render.
func (e *Editor) SetParams(p Params) {
	e.params = p
}

// Render recomputes the current image from the original and the active
// parameters. The previous current image becomes the undo snapshot. Without
// a loaded image Render does nothing.
func (e *Editor) Render() {
	if e.original == nil {
		return
	}

	out := Render(e.original, e.params)
	if out == e.original {
		out = imaging.Clone(out)
	}

	e.history.Push(e.current)
	e.current = out

	e.log.WithFields(logrus.Fields{
		"params": e.params,
		"width":  e.current.Bounds().Dx(),
		"height": e.current.Bounds().Dy(),
	}).Debug("Rendered")
}

// Reset restores a copy of the original and the default parameters without
// running the pipeline. The previous current image becomes the undo
// snapshot. Without a loaded image Reset does nothing.
func (e *Editor) Reset() {
	if e.original == nil {
		return
	}

	e.history.Push(e.current)
	e.current = imaging.Clone(e.original)
	e.params = DefaultParams()

	e.log.Debug("Reset to original")
}

// Undo restores the snapshot taken by the last Render or Reset and reports
// whether there was one. Only the image is restored: the active parameters
// stay as they are. A second Undo in a row does nothing.
func (e *Editor) Undo() bool {
	prev, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.current = prev

	e.log.Debug("Undo")
	return true
}

// Save writes the current image to path in the format implied by its
// extension. JPEG output is flattened to opaque and written at quality
// pix.JPEGQuality. Returns ErrNoImage when nothing is loaded and an
// *EncodeError for unsupported extensions or write failures.
func (e *Editor) Save(path string) (err error) {
	if e.current == nil {
		return ErrNoImage
	}

	format, err := pix.FormatFromPath(path)
	if err != nil {
		return &EncodeError{Dest: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Dest: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &EncodeError{Dest: path, Err: cerr}
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := pix.Encode(f, e.current, format); err != nil {
		return &EncodeError{Dest: path, Err: err}
	}

	e.log.WithFields(logrus.Fields{
		"path":   path,
		"format": format.String(),
		"width":  e.current.Bounds().Dx(),
		"height": e.current.Bounds().Dy(),
	}).Info("Image saved")

	return nil
}

// Encode writes the current image to w in the given format.
func (e *Editor) Encode(w io.Writer, format pix.Format) error {
	if e.current == nil {
		return ErrNoImage
	}
	if err := pix.Encode(w, e.current, format); err != nil {
		return &EncodeError{Dest: format.String() + " stream", Err: err}
	}
	return nil
}
