package max7219

import (
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/BeatGlow/max7219/pixel"
)

// Device is a chain of MAX7219/MAX7221 chips sharing one bus.
//
// Addresses count from 0, the chip closest to the bus master. Each chip has
// 8 rows (digit registers) of 8 columns; column 0 is the most significant bit
// of a row.
type Device struct {
	mu       sync.Mutex
	c        Conn
	devices  int
	rotation Rotation

	// fb mirrors the digit registers, 8 pixels wide and one row per register.
	fb      *pixel.MonoImage
	backup  []byte
	spidata []byte
	wire    []byte
	err     error
}

// New initializes the chain. All devices are cleared and left in shutdown
// mode, use [Device.Shutdown] to switch them on.
func New(c Conn, config *Config) (*Device, error) {
	if c == nil {
		return nil, ErrConn
	}
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	devices := config.Devices
	if devices <= 0 || devices > MaxDevices {
		devices = MaxDevices
	}

	d := &Device{
		c:        c,
		devices:  devices,
		rotation: config.Rotation,
		fb:       pixel.NewMonoImage(8, devices*8),
		backup:   make([]byte, devices*8),
		spidata:  make([]byte, devices*2),
		wire:     make([]byte, devices*2),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for addr := 0; addr < d.devices; addr++ {
		d.spiTransfer(addr, opDisplayTest, 0)
		d.setScanLimit(addr, maxScanLimit)
		d.spiTransfer(addr, opDecodeMode, 0)
		d.clearDisplay(addr)
		d.shutdown(addr, true)
	}
	if d.err != nil {
		return nil, fmt.Errorf("max7219: initialization failed: %w", d.err)
	}

	if debug {
		log.Printf("max7219: initialized %s", d)
	}
	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("MAX7219 chain of %d on %s", d.devices, d.c)
}

// DeviceCount is the number of devices in the chain.
func (d *Device) DeviceCount() int {
	return d.devices
}

// Err returns the first bus error, operations that failed on the bus are not retried.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Close shuts down all devices and closes the connection.
func (d *Device) Close() error {
	d.mu.Lock()
	for addr := 0; addr < d.devices; addr++ {
		d.shutdown(addr, true)
	}
	err := d.err
	d.mu.Unlock()

	if cerr := d.c.Close(); err == nil {
		err = cerr
	}
	return err
}

func (d *Device) validAddr(addr int) bool {
	return addr >= 0 && addr < d.devices
}

func validIndex(i int) bool {
	return i >= 0 && i < 8
}

// Shutdown blanks the display of a device when enable is true, or resumes normal operation.
func (d *Device) Shutdown(addr int, enable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shutdown(addr, enable)
}

func (d *Device) shutdown(addr int, enable bool) {
	if !d.validAddr(addr) {
		return
	}
	if enable {
		d.spiTransfer(addr, opShutdown, 0)
	} else {
		d.spiTransfer(addr, opShutdown, 1)
	}
}

// SetScanLimit sets the highest row (0-7) the device scans.
func (d *Device) SetScanLimit(addr, limit int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setScanLimit(addr, limit)
}

func (d *Device) setScanLimit(addr, limit int) {
	if !d.validAddr(addr) {
		return
	}
	if limit >= 0 && limit <= maxScanLimit {
		d.spiTransfer(addr, opScanLimit, byte(limit))
	}
}

// SetIntensity sets the brightness (0-15).
func (d *Device) SetIntensity(addr, level int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) {
		return
	}
	if level >= 0 && level <= maxIntensity {
		d.spiTransfer(addr, opIntensity, byte(level))
	}
}

// DisplayTest lights all LEDs of a device at full brightness, regardless of the
// row registers, while on is true.
func (d *Device) DisplayTest(addr int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) {
		return
	}
	if on {
		d.spiTransfer(addr, opDisplayTest, 1)
	} else {
		d.spiTransfer(addr, opDisplayTest, 0)
	}
}

// ClearDisplay switches off all LEDs of a device.
func (d *Device) ClearDisplay(addr int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearDisplay(addr)
}

func (d *Device) clearDisplay(addr int) {
	if !d.validAddr(addr) {
		return
	}
	for row := 0; row < 8; row++ {
		d.writeRow(addr, row, 0)
	}
}

// SetLed switches a single LED.
func (d *Device) SetLed(addr, row, col int, state bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setLed(addr, row, col, state)
}

func (d *Device) setLed(addr, row, col int, state bool) {
	if !d.validAddr(addr) || !validIndex(row) || !validIndex(col) {
		return
	}
	y := addr*8 + row
	d.fb.SetBit(col, y, state)
	d.spiTransfer(addr, opDigit0+byte(row), d.fb.Pix[y])
}

// GetLed returns the state of a single LED, false for invalid arguments.
func (d *Device) GetLed(addr, row, col int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.getLed(addr, row, col)
}

func (d *Device) getLed(addr, row, col int) bool {
	if !d.validAddr(addr) || !validIndex(row) || !validIndex(col) {
		return false
	}
	return d.fb.Bit(col, addr*8+row)
}

// SetRow sets all 8 LEDs of a row, the most significant bit is column 0.
func (d *Device) SetRow(addr, row int, value byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) || !validIndex(row) {
		return
	}
	d.writeRow(addr, row, value)
}

// Row returns the current value of a row, 0 for invalid arguments.
func (d *Device) Row(addr, row int) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) || !validIndex(row) {
		return 0
	}
	return d.fb.Pix[addr*8+row]
}

// SetColumn sets all 8 LEDs of a column, the most significant bit is row 0.
//
// Every LED is written separately, so this costs 8 transfers.
func (d *Device) SetColumn(addr, col int, value byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) || !validIndex(col) {
		return
	}
	for row := 0; row < 8; row++ {
		d.setLed(addr, row, col, (value>>uint(7-row))&0x01 == 1)
	}
}

// SetXY switches the LED at the rotated coordinate (x, y).
func (d *Device) SetXY(addr, x, y int, state bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setXY(addr, x, y, state)
}

// SetPoint is SetXY for a point.
func (d *Device) SetPoint(addr int, p image.Point, state bool) {
	d.SetXY(addr, p.X, p.Y, state)
}

func (d *Device) setXY(addr, x, y int, state bool) {
	p := transform(d.rotation, image.Pt(x, y))
	d.setLed(addr, p.Y, p.X, state)
}

// GetXY returns the state of the LED at the rotated coordinate (x, y).
func (d *Device) GetXY(addr, x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.getXY(addr, x, y)
}

// GetPoint is GetXY for a point.
func (d *Device) GetPoint(addr int, p image.Point) bool {
	return d.GetXY(addr, p.X, p.Y)
}

func (d *Device) getXY(addr, x, y int) bool {
	p := transform(d.rotation, image.Pt(x, y))
	return d.getLed(addr, p.Y, p.X)
}

// InvertXY toggles the LED at the rotated coordinate (x, y).
func (d *Device) InvertXY(addr, x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setXY(addr, x, y, !d.getXY(addr, x, y))
}

// SetRawXY switches the LED in column x of row y, ignoring rotation.
func (d *Device) SetRawXY(addr, x, y int, state bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setLed(addr, y, x, state)
}

// GetRawXY returns the LED in column x of row y, ignoring rotation.
func (d *Device) GetRawXY(addr, x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.getLed(addr, y, x)
}

// InvertRawXY toggles the LED in column x of row y, ignoring rotation.
func (d *Device) InvertRawXY(addr, x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setLed(addr, y, x, !d.getLed(addr, y, x))
}

// SetDigit shows a hexadecimal digit (0-15) on 7-segment digit position 0-7.
func (d *Device) SetDigit(addr, digit int, value byte, dp bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) || !validIndex(digit) || value > 15 {
		return
	}
	d.writeRow(addr, digit, segments(value, dp))
}

// SetChar shows an ASCII character on 7-segment digit position 0-7. Characters
// without a glyph are blank, values above 127 show as a space.
func (d *Device) SetChar(addr, digit int, value byte, dp bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.validAddr(addr) || !validIndex(digit) {
		return
	}
	if value > 127 {
		value = ' '
	}
	d.writeRow(addr, digit, segments(value, dp))
}

func segments(index byte, dp bool) byte {
	v := charTable[index]
	if dp {
		v |= decimalPoint
	}
	return v
}

// Backup saves the state of all devices.
func (d *Device) Backup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.backup, d.fb.Pix)
}

// Restore brings back the state saved by the last Backup and sends every row to the chain.
func (d *Device) Restore() {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(d.fb.Pix, d.backup)
	for addr := 0; addr < d.devices; addr++ {
		for row := 0; row < 8; row++ {
			d.spiTransfer(addr, opDigit0+byte(row), d.fb.Pix[addr*8+row])
		}
	}
}

func (d *Device) writeRow(addr, row int, value byte) {
	d.fb.Pix[addr*8+row] = value
	d.spiTransfer(addr, opDigit0+byte(row), value)
}

// spiTransfer writes one register of one device, every other device in the
// chain receives a no-op.
func (d *Device) spiTransfer(addr int, opcode, data byte) {
	for i := range d.spidata {
		d.spidata[i] = opNoop
	}
	d.spidata[addr*2] = data
	d.spidata[addr*2+1] = opcode

	// The last device in the chain is shifted out first.
	n := len(d.spidata)
	for i := range d.wire {
		d.wire[i] = d.spidata[n-1-i]
	}

	if debug {
		log.Printf("max7219: device %d register %#02x = %#02x", addr, opcode, data)
	}
	if err := d.c.Tx(d.wire); err != nil && d.err == nil {
		log.Printf("max7219: transfer to device %d failed: %v", addr, err)
		d.err = err
	}
}
