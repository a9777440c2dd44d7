package max7219

import (
	"errors"
	"testing"
)

func TestChecked(t *testing.T) {
	d, _ := newTestDevice(t, 2)
	c := d.Checked()

	tests := []struct {
		Name string
		Call func() error
		Want error
	}{
		{"shutdown", func() error { return c.Shutdown(1, false) }, nil},
		{"shutdown address", func() error { return c.Shutdown(2, false) }, ErrAddress},
		{"scan limit", func() error { return c.SetScanLimit(0, 7) }, nil},
		{"scan limit value", func() error { return c.SetScanLimit(0, 8) }, ErrValue},
		{"intensity", func() error { return c.SetIntensity(0, 15) }, nil},
		{"intensity value", func() error { return c.SetIntensity(0, 16) }, ErrValue},
		{"intensity address", func() error { return c.SetIntensity(-1, 1) }, ErrAddress},
		{"clear", func() error { return c.ClearDisplay(1) }, nil},
		{"clear address", func() error { return c.ClearDisplay(5) }, ErrAddress},
		{"led", func() error { return c.SetLed(1, 7, 7, true) }, nil},
		{"led row", func() error { return c.SetLed(1, 8, 7, true) }, ErrRow},
		{"led column", func() error { return c.SetLed(1, 7, -1, true) }, ErrColumn},
		{"row", func() error { return c.SetRow(0, 0, 0xff) }, nil},
		{"row index", func() error { return c.SetRow(0, 9, 0xff) }, ErrRow},
		{"column", func() error { return c.SetColumn(0, 0, 0xff) }, nil},
		{"column index", func() error { return c.SetColumn(0, 8, 0xff) }, ErrColumn},
		{"digit", func() error { return c.SetDigit(0, 3, 15, true) }, nil},
		{"digit index", func() error { return c.SetDigit(0, 8, 1, false) }, ErrDigit},
		{"digit value", func() error { return c.SetDigit(0, 3, 16, false) }, ErrValue},
		{"char", func() error { return c.SetChar(0, 3, 200, false) }, nil},
		{"char index", func() error { return c.SetChar(0, -1, 'a', false) }, ErrDigit},
		{"char address", func() error { return c.SetChar(2, 0, 'a', false) }, ErrAddress},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			err := test.Call()
			if test.Want == nil && err != nil {
				it.Errorf("unexpected error: %v", err)
			} else if !errors.Is(err, test.Want) {
				it.Errorf("expected %v, got %v", test.Want, err)
			}
		})
	}

	if v, err := c.GetLed(1, 7, 7); err != nil || !v {
		t.Errorf("expected lit LED, got %t (%v)", v, err)
	}
	if _, err := c.GetLed(1, 7, 8); !errors.Is(err, ErrColumn) {
		t.Errorf("expected %v, got %v", ErrColumn, err)
	}
}

func TestCheckedBusError(t *testing.T) {
	d, conn := newTestDevice(t, 1)
	fail := errors.New("bus fault")
	conn.err = fail
	if err := d.Checked().SetLed(0, 0, 0, true); !errors.Is(err, fail) {
		t.Errorf("expected %v, got %v", fail, err)
	}
}
