package conn

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Errors
var (
	ErrDataPin   = errors.New("conn: data (DIN) GPIO pin is invalid")
	ErrClockPin  = errors.New("conn: clock (CLK) GPIO pin is invalid")
	ErrSelectPin = errors.New("conn: chip select (CS) GPIO pin is invalid")
)

// ShiftOut is a bit-banged serial bus on three GPIO output pins.
type ShiftOut struct {
	data  gpio.PinOut
	clock gpio.PinOut
	cs    gpio.PinOut
}

func validPin(pin gpio.PinOut) bool {
	return pin != nil && pin != gpio.INVALID
}

// NewShiftOut configures the pins as outputs, with the clock and data lines
// low and chip select high (idle).
func NewShiftOut(data, clock, cs gpio.PinOut) (*ShiftOut, error) {
	switch {
	case !validPin(data):
		return nil, ErrDataPin
	case !validPin(clock):
		return nil, ErrClockPin
	case !validPin(cs):
		return nil, ErrSelectPin
	}

	c := &ShiftOut{
		data:  data,
		clock: clock,
		cs:    cs,
	}
	if err := data.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("conn: error configuring %s: %w", data, err)
	}
	if err := clock.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("conn: error configuring %s: %w", clock, err)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("conn: error configuring %s: %w", cs, err)
	}
	return c, nil
}

func (c *ShiftOut) String() string {
	return fmt.Sprintf("shift out DIN=%s CLK=%s CS=%s", c.data, c.clock, c.cs)
}

// Close leaves the chip select line idle.
func (c *ShiftOut) Close() error {
	return c.cs.Out(gpio.High)
}

// Tx shifts out w in one chip select frame.
func (c *ShiftOut) Tx(w []byte) (err error) {
	if err = c.cs.Out(gpio.Low); err != nil {
		return
	}
	for _, b := range w {
		if err = c.shiftByte(b); err != nil {
			return
		}
	}
	return c.cs.Out(gpio.High)
}

func (c *ShiftOut) shiftByte(b byte) (err error) {
	for bit := 7; bit >= 0; bit-- {
		if err = c.data.Out(gpio.Level(b&(1<<uint(bit)) != 0)); err != nil {
			return
		}
		if err = c.clock.Out(gpio.High); err != nil {
			return
		}
		if err = c.clock.Out(gpio.Low); err != nil {
			return
		}
	}
	return
}
