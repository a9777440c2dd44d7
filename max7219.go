// Package max7219 drives daisy-chained MAX7219/MAX7221 LED matrix controllers.
//
// Up to eight 8×8 matrices share one serial bus. The driver mirrors the state of
// every matrix in memory, so pixels can be read back, rotated and restored
// without talking to the hardware. Every register write is sent to the chain as
// a single chip-select framed transfer; devices that are not addressed receive
// a no-op.
//
// Invalid addresses, rows, columns and values are silently ignored, like on the
// microcontroller libraries this driver is compatible with. Use [Device.Checked]
// to get an error instead.
package max7219

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("MAX7219_DEBUG") != ""
}

// Errors
var (
	ErrAddress = errors.New("max7219: device address out of range")
	ErrRow     = errors.New("max7219: row out of range")
	ErrColumn  = errors.New("max7219: column out of range")
	ErrDigit   = errors.New("max7219: digit out of range")
	ErrValue   = errors.New("max7219: value out of range")
	ErrConn    = errors.New("max7219: no connection")
)

// MaxDevices is the longest supported chain.
const MaxDevices = 8

// Register opcodes.
const (
	opNoop        = 0x00
	opDigit0      = 0x01 // digits 1-7 follow
	opDecodeMode  = 0x09
	opIntensity   = 0x0a
	opScanLimit   = 0x0b
	opShutdown    = 0x0c
	opDisplayTest = 0x0f
)

// Register limits.
const (
	maxScanLimit = 7
	maxIntensity = 15
	decimalPoint = 0x80
)

// Rotation is the logical rotation in degrees.
type Rotation int

// Supported rotations. Any other value leaves coordinates untouched.
const (
	NoRotation Rotation = 0
	Rotate90   Rotation = 90  // Rotate 90° clock wise
	Rotate180  Rotation = 180 // Rotate 180°
	Rotate270  Rotation = 270 // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Config is the device chain configuration.
type Config struct {
	// Devices in the chain, values outside 1-8 select 8.
	Devices int

	// Rotation applied to logical coordinates.
	Rotation Rotation
}

// DefaultConfig is used when no configuration is given.
var DefaultConfig = Config{
	Devices: MaxDevices,
}
