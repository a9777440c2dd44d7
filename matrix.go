package max7219

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/max7219/pixel"
)

var (
	_ draw.Image        = (*Matrix)(nil)
	_ drivers.Displayer = (*Matrix)(nil)
)

// Matrix is the chain seen as one display, 8 pixels high and 8 pixels wide per
// device. Device 0 holds columns 0-7, device 1 columns 8-15 and so on. Pixels
// are written through [Device.SetXY], so the rotation applies to every device.
//
// Matrix implements [image/draw.Image] and the TinyGo drivers.Displayer.
type Matrix struct {
	d *Device
}

// Matrix returns a display view of the chain.
func (d *Device) Matrix() *Matrix {
	return &Matrix{d: d}
}

func (m *Matrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.d.devices*8, 8)
}

func (m *Matrix) ColorModel() color.Model {
	return pixel.MonoModel
}

func (m *Matrix) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.Transparent
	}
	if m.d.GetXY(x/8, x%8, y) {
		return pixel.On
	}
	return pixel.Off
}

func (m *Matrix) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return
	}
	m.d.SetXY(x/8, x%8, y, pixel.MonoModel.Convert(c).(pixel.Mono).On)
}

// Size returns the width and height in pixels.
func (m *Matrix) Size() (x, y int16) {
	return int16(m.d.devices * 8), 8
}

// SetPixel switches the pixel at (x, y), any color brighter than mid-gray is on.
func (m *Matrix) SetPixel(x, y int16, c color.RGBA) {
	m.Set(int(x), int(y), c)
}

// Display returns the first bus error, pixels are sent as soon as they are set.
func (m *Matrix) Display() error {
	return m.d.Err()
}

// Clear switches off all pixels.
func (m *Matrix) Clear() {
	for addr := 0; addr < m.d.devices; addr++ {
		m.d.ClearDisplay(addr)
	}
}
