package max7219

import "fmt"

// Checked validates arguments before passing them on to the Device. It returns
// an error where the Device would silently ignore the call, which is useful
// for catching mistakes in host-side tests.
type Checked struct {
	d *Device
}

// Checked returns the validating wrapper of d.
func (d *Device) Checked() Checked {
	return Checked{d: d}
}

func (c Checked) checkAddr(addr int) error {
	if addr < 0 || addr >= c.d.devices {
		return fmt.Errorf("%w: %d (chain of %d)", ErrAddress, addr, c.d.devices)
	}
	return nil
}

func (c Checked) checkCell(addr, row, col int) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	if !validIndex(row) {
		return fmt.Errorf("%w: %d", ErrRow, row)
	}
	if !validIndex(col) {
		return fmt.Errorf("%w: %d", ErrColumn, col)
	}
	return nil
}

func (c Checked) Shutdown(addr int, enable bool) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	c.d.Shutdown(addr, enable)
	return c.d.Err()
}

func (c Checked) SetScanLimit(addr, limit int) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	if limit < 0 || limit > maxScanLimit {
		return fmt.Errorf("%w: scan limit %d", ErrValue, limit)
	}
	c.d.SetScanLimit(addr, limit)
	return c.d.Err()
}

func (c Checked) SetIntensity(addr, level int) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	if level < 0 || level > maxIntensity {
		return fmt.Errorf("%w: intensity %d", ErrValue, level)
	}
	c.d.SetIntensity(addr, level)
	return c.d.Err()
}

func (c Checked) ClearDisplay(addr int) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	c.d.ClearDisplay(addr)
	return c.d.Err()
}

func (c Checked) SetLed(addr, row, col int, state bool) error {
	if err := c.checkCell(addr, row, col); err != nil {
		return err
	}
	c.d.SetLed(addr, row, col, state)
	return c.d.Err()
}

func (c Checked) GetLed(addr, row, col int) (bool, error) {
	if err := c.checkCell(addr, row, col); err != nil {
		return false, err
	}
	return c.d.GetLed(addr, row, col), nil
}

func (c Checked) SetRow(addr, row int, value byte) error {
	if err := c.checkCell(addr, row, 0); err != nil {
		return err
	}
	c.d.SetRow(addr, row, value)
	return c.d.Err()
}

func (c Checked) SetColumn(addr, col int, value byte) error {
	if err := c.checkCell(addr, 0, col); err != nil {
		return err
	}
	c.d.SetColumn(addr, col, value)
	return c.d.Err()
}

func (c Checked) SetDigit(addr, digit int, value byte, dp bool) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	if !validIndex(digit) {
		return fmt.Errorf("%w: %d", ErrDigit, digit)
	}
	if value > 15 {
		return fmt.Errorf("%w: digit value %d", ErrValue, value)
	}
	c.d.SetDigit(addr, digit, value, dp)
	return c.d.Err()
}

// SetChar accepts any value, characters above 127 show as a space.
func (c Checked) SetChar(addr, digit int, value byte, dp bool) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	if !validIndex(digit) {
		return fmt.Errorf("%w: %d", ErrDigit, digit)
	}
	c.d.SetChar(addr, digit, value, dp)
	return c.d.Err()
}
