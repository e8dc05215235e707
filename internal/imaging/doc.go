// Package imaging provides the codec and display helpers around the editor's
// image buffers.
//
// Buffers are *image.NRGBA values with bounds starting at (0,0): 8 bits per
// channel, non-premultiplied alpha. Decode converts every supported source
// format into this layout; Encode writes it back out as PNG, JPEG or WEBP.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF, BMP, TIFF and WEBP.
//
// Encoding:
//   - PNG: lossless, alpha preserved
//   - WEBP: lossless, alpha preserved
//   - JPEG: flattened to opaque, quality JPEGQuality (95)
//
// # Previews
//
// Preview produces a scaled copy that fits a viewport, optionally with a
// grid overlay, encoded as base64 PNG. The source buffer is never modified,
// so the same buffer can be previewed at any size without affecting edits.
//
// # Thread Safety
//
// Functions in this package are stateless and never mutate their input
// images, so they may be called concurrently on shared buffers.
package imaging
