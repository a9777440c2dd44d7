// Package pixel implements the 1-bit color model and row image used to mirror LED matrix state.
//
// The image types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so a chain of matrices can be drawn on with the standard library.
package pixel
