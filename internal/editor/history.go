package editor

import "image"

// History is a single-slot snapshot register backing one-step undo. It is
// not a stack: Push replaces whatever was stored.
type History struct {
	snapshot *image.NRGBA
}

// Push stores img, discarding any previous snapshot.
func (h *History) Push(img *image.NRGBA) {
	h.snapshot = img
}

// Pop returns the stored snapshot and empties the slot. The second result is
// false when there was nothing to return.
func (h *History) Pop() (*image.NRGBA, bool) {
	img := h.snapshot
	h.snapshot = nil
	return img, img != nil
}

// Clear empties the slot.
func (h *History) Clear() {
	h.snapshot = nil
}

// Empty reports whether Pop would return nothing.
func (h *History) Empty() bool {
	return h.snapshot == nil
}
