package editor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pix "github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// writeTestImage writes img as PNG into a temp dir and returns its path.
func writeTestImage(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// loadedEditor returns an editor with a 60x40 quadrant image loaded.
func loadedEditor(t *testing.T) *Editor {
	t.Helper()

	e := New(nil)
	if err := e.Load(writeTestImage(t, quadrantImage(60, 40))); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return e
}

func TestNew_Empty(t *testing.T) {
	e := New(nil)

	if e.HasImage() {
		t.Error("new editor should have no image")
	}
	if e.Original() != nil || e.Current() != nil {
		t.Error("new editor should have nil buffers")
	}
	if e.CanUndo() {
		t.Error("new editor should have nothing to undo")
	}
	if !e.Params().IsIdentity() {
		t.Error("new editor should start with identity params")
	}
}

func TestEditor_Load(t *testing.T) {
	e := loadedEditor(t)

	if !e.HasImage() {
		t.Fatal("HasImage should be true after Load")
	}
	if e.SourceFormat() != "png" {
		t.Errorf("SourceFormat = %q, want png", e.SourceFormat())
	}
	if !samePixels(e.Original(), quadrantImage(60, 40)) {
		t.Error("Original does not match the file")
	}
	if !samePixels(e.Current(), e.Original()) {
		t.Error("Current should equal Original after Load")
	}
	if e.Current() == e.Original() {
		t.Error("Current should be a copy, not the original buffer")
	}
}

func TestEditor_LoadResetsSession(t *testing.T) {
	e := loadedEditor(t)
	e.SetParams(Params{Brightness: 0.5, Contrast: 1, Saturation: 1})
	e.Render()

	if err := e.Load(writeTestImage(t, solidImage(30, 30, color.NRGBA{1, 2, 3, 255}))); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !e.Params().IsIdentity() {
		t.Error("Load should restore default params")
	}
	if e.CanUndo() {
		t.Error("Load should clear history")
	}
	if e.Current().Bounds().Dx() != 30 {
		t.Error("Current should be the newly loaded image")
	}
}

func TestEditor_LoadFailureKeepsState(t *testing.T) {
	e := loadedEditor(t)
	p := Params{Brightness: 1.5, Contrast: 1, Saturation: 1}
	e.SetParams(p)
	e.Render()

	original, current := e.Original(), e.Current()

	err := e.LoadReader(strings.NewReader("definitely not an image"))
	if err == nil {
		t.Fatal("expected error for invalid data")
	}
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error should be *DecodeError, got %T", err)
	}

	err = e.Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.As(err, &decErr) {
		t.Fatalf("missing file error should be *DecodeError, got %T", err)
	}

	if e.Original() != original || e.Current() != current {
		t.Error("failed load should keep the previous buffers")
	}
	if e.Params() != p {
		t.Error("failed load should keep the previous params")
	}
	if !e.CanUndo() {
		t.Error("failed load should keep the history")
	}
}

func TestEditor_LoadReader(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, quadrantImage(20, 20)); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	e := New(nil)
	if err := e.LoadReader(&buf); err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if !samePixels(e.Current(), quadrantImage(20, 20)) {
		t.Error("Current does not match the decoded data")
	}
}

func TestEditor_SetParamsDoesNotRender(t *testing.T) {
	e := loadedEditor(t)
	before := e.Current()

	e.SetParams(Params{Brightness: 0, Contrast: 1, Saturation: 1})

	if e.Current() != before {
		t.Error("SetParams should not touch the current image")
	}
	if e.CanUndo() {
		t.Error("SetParams should not push history")
	}
}

func TestEditor_Render(t *testing.T) {
	e := loadedEditor(t)
	e.SetParams(Params{Brightness: 0, Contrast: 1, Saturation: 1})
	e.Render()

	if got := e.Current().NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("rendered pixel = %v, want black", got)
	}
	if !samePixels(e.Original(), quadrantImage(60, 40)) {
		t.Error("Render modified the original")
	}
	if !e.CanUndo() {
		t.Error("Render should push history")
	}
}

func TestEditor_RenderAlwaysFromOriginal(t *testing.T) {
	e := loadedEditor(t)
	p := Params{Brightness: 0.5, Contrast: 1, Saturation: 1}

	e.SetParams(p)
	e.Render()
	first := e.Current()
	e.Render()

	if !samePixels(first, e.Current()) {
		t.Error("rendering twice should not compound the adjustment")
	}
}

func TestEditor_RenderIdentityCopies(t *testing.T) {
	e := loadedEditor(t)
	e.Render()

	if e.Current() == e.Original() {
		t.Error("Current should never alias Original")
	}
	if !samePixels(e.Current(), e.Original()) {
		t.Error("identity render should match the original")
	}
}

func TestEditor_Undo(t *testing.T) {
	e := loadedEditor(t)
	before := e.Current()

	p := Params{Brightness: 1, Contrast: 1, Saturation: 1, Rotation: 90}
	e.SetParams(p)
	e.Render()

	if !e.Undo() {
		t.Fatal("Undo should report a restored snapshot")
	}
	if e.Current() != before {
		t.Error("Undo should restore the previous image")
	}
	if e.Params() != p {
		t.Error("Undo should not change params")
	}

	if e.Undo() {
		t.Error("second Undo should report nothing to restore")
	}
	if e.Current() != before {
		t.Error("second Undo should not change the image")
	}
}

func TestEditor_UndoIsSingleLevel(t *testing.T) {
	e := loadedEditor(t)

	e.SetParams(Params{Brightness: 0.5, Contrast: 1, Saturation: 1})
	e.Render()
	afterFirst := e.Current()

	e.SetParams(Params{Brightness: 1.5, Contrast: 1, Saturation: 1})
	e.Render()

	e.Undo()
	if e.Current() != afterFirst {
		t.Error("Undo should restore the image from just before the last render")
	}
}

func TestEditor_Reset(t *testing.T) {
	e := loadedEditor(t)
	e.SetParams(Params{Brightness: 1.3, Contrast: 0.7, Saturation: 0, Rotation: 45, CropLeft: 0.2})
	e.Render()
	rendered := e.Current()

	e.Reset()

	if !e.Params().IsIdentity() {
		t.Error("Reset should restore default params")
	}
	if !samePixels(e.Current(), e.Original()) {
		t.Error("Reset should restore the original pixels")
	}
	if e.Current() == e.Original() {
		t.Error("Reset should copy the original")
	}

	if !e.Undo() || e.Current() != rendered {
		t.Error("Undo after Reset should bring back the rendered image")
	}
}

func TestEditor_EmptyNoOps(t *testing.T) {
	e := New(nil)

	e.Render()
	e.Reset()
	if e.Undo() {
		t.Error("Undo on empty editor should report false")
	}
	if e.HasImage() || e.Current() != nil || e.CanUndo() {
		t.Error("no-ops on an empty editor should not create state")
	}

	if err := e.Save(filepath.Join(t.TempDir(), "out.png")); !errors.Is(err, ErrNoImage) {
		t.Errorf("Save on empty editor = %v, want ErrNoImage", err)
	}
	if err := e.Encode(&bytes.Buffer{}, pix.PNG); !errors.Is(err, ErrNoImage) {
		t.Errorf("Encode on empty editor = %v, want ErrNoImage", err)
	}
}

func TestEditor_SavePNGRoundTrip(t *testing.T) {
	src := quadrantImage(60, 40)
	for x := 0; x < 10; x++ {
		src.SetNRGBA(x, 0, color.NRGBA{10, 20, 30, 77})
	}

	e := New(nil)
	if err := e.Load(writeTestImage(t, src)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.PNG")
	if err := e.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back := New(nil)
	if err := back.Load(out); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !samePixels(back.Original(), src) {
		t.Error("PNG round trip should be lossless including alpha")
	}
}

func TestEditor_SaveWEBPRoundTrip(t *testing.T) {
	e := loadedEditor(t)
	e.SetParams(Params{Brightness: 1, Contrast: 1, Saturation: 1, Rotation: 30})
	e.Render()

	out := filepath.Join(t.TempDir(), "out.webp")
	if err := e.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back := New(nil)
	if err := back.Load(out); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if back.SourceFormat() != "webp" {
		t.Errorf("reloaded format = %q, want webp", back.SourceFormat())
	}
	if back.Original().Bounds() != e.Current().Bounds() {
		t.Fatalf("bounds = %v, want %v", back.Original().Bounds(), e.Current().Bounds())
	}
	if a := back.Original().NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestEditor_SaveWEBPLossless(t *testing.T) {
	src := quadrantImage(60, 40)
	for x := 0; x < 60; x++ {
		src.SetNRGBA(x, 39, color.NRGBA{uint8(x * 4), 50, 200, uint8(100 + x)})
	}

	e := New(nil)
	if err := e.Load(writeTestImage(t, src)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.webp")
	if err := e.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back := New(nil)
	if err := back.Load(out); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !samePixels(back.Original(), src) {
		t.Error("WEBP round trip should be lossless")
	}
}

func TestEditor_SaveJPEGFlattensAlpha(t *testing.T) {
	e := loadedEditor(t)
	e.SetParams(Params{Brightness: 1, Contrast: 1, Saturation: 1, Rotation: 45})
	e.Render()

	for _, name := range []string{"out.jpg", "out.jpeg"} {
		out := filepath.Join(t.TempDir(), name)
		if err := e.Save(out); err != nil {
			t.Fatalf("Save(%s) failed: %v", name, err)
		}

		back := New(nil)
		if err := back.Load(out); err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if back.SourceFormat() != "jpeg" {
			t.Errorf("reloaded format = %q, want jpeg", back.SourceFormat())
		}
		if !back.Original().Opaque() {
			t.Errorf("%s should be fully opaque", name)
		}
	}
}

func TestEditor_SaveUnsupportedExtension(t *testing.T) {
	e := loadedEditor(t)
	dir := t.TempDir()

	for _, name := range []string{"out.gif", "out.bmp", "out"} {
		path := filepath.Join(dir, name)
		err := e.Save(path)

		var encErr *EncodeError
		if !errors.As(err, &encErr) {
			t.Errorf("Save(%s) error = %v, want *EncodeError", name, err)
			continue
		}
		if !errors.Is(err, pix.ErrUnsupportedFormat) {
			t.Errorf("Save(%s) should wrap ErrUnsupportedFormat", name)
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("Save(%s) should not create a file", name)
		}
	}
}

func TestEditor_SaveUnwritableDestination(t *testing.T) {
	e := loadedEditor(t)

	err := e.Save(filepath.Join(t.TempDir(), "no-such-dir", "out.png"))
	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Errorf("error = %v, want *EncodeError", err)
	}
}

func TestEditor_SaveKeepsState(t *testing.T) {
	e := loadedEditor(t)
	e.Render()
	current := e.Current()

	if err := e.Save(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if e.Current() != current || !e.CanUndo() {
		t.Error("Save should not change editor state")
	}
}

func TestEditor_Encode(t *testing.T) {
	e := loadedEditor(t)

	var buf bytes.Buffer
	if err := e.Encode(&buf, pix.PNG); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if img.Bounds() != e.Current().Bounds() {
		t.Errorf("bounds = %v, want %v", img.Bounds(), e.Current().Bounds())
	}
}
