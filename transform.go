package max7219

import "image"

// SetRotation changes the rotation of all logical coordinates.
func (d *Device) SetRotation(rotation Rotation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rotation = rotation
}

// Rotation returns the active rotation.
func (d *Device) Rotation() Rotation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rotation
}

// Transform maps a logical coordinate to a physical (column, row) coordinate
// using the active rotation.
func (d *Device) Transform(p image.Point) image.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return transform(d.rotation, p)
}

func transform(rotation Rotation, p image.Point) image.Point {
	switch rotation {
	case Rotate90:
		return rotate90(p)
	case Rotate180:
		return rotate180(p)
	case Rotate270:
		return rotate270(p)
	default:
		return p
	}
}

func flipHorizontal(p image.Point) image.Point {
	p.X = 7 - p.X
	return p
}

func flipVertical(p image.Point) image.Point {
	p.Y = 7 - p.Y
	return p
}

func rotate90(p image.Point) image.Point {
	p.X, p.Y = p.Y, p.X
	return flipHorizontal(p)
}

func rotate180(p image.Point) image.Point {
	return flipHorizontal(flipVertical(p))
}

// rotate270 must stay a composition, rotated images have to match the
// original library bit for bit.
func rotate270(p image.Point) image.Point {
	return rotate180(rotate90(p))
}
