// Package editor holds the editing core: the adjustment operations, the
// fixed pipeline that applies them, and the Editor state manager.
//
// # Pipeline
//
// Every render starts from the untouched original and applies, in order:
//
//  1. CropPercent
//  2. Brightness
//  3. Contrast
//  4. Saturation
//  5. Rotate
//
// Results never depend on previous renders, so the same Params always give
// the same pixels.
//
// # History
//
// The editor keeps exactly one snapshot. Render and Reset store the image
// they replace; Undo brings it back once. Undo restores pixels only and
// leaves the active Params alone.
//
// Buffers handed out by the editor are shared, not copied. Operations never
// write to their input, so a snapshot stays valid for as long as it is held.
package editor
