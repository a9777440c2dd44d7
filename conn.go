package max7219

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"github.com/BeatGlow/max7219/conn"
)

// Conn is the connection interface for communicating with the device chain.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Tx sends all bytes in a single chip select frame. The bytes for the
	// device furthest down the chain come first.
	Tx(w []byte) error
}

// BitBangConfig describes a bus bit-banged on GPIO pins.
type BitBangConfig struct {
	// Data (DIN) pin, looked up by DataName if nil.
	Data gpio.PinOut

	// Clock (CLK) pin, looked up by ClockName if nil.
	Clock gpio.PinOut

	// Select (CS/LOAD) pin, looked up by SelectName if nil.
	Select gpio.PinOut

	DataName   string
	ClockName  string
	SelectName string
}

// DefaultBitBangConfig uses the pins of the first hardware SPI bus on a Raspberry Pi.
var DefaultBitBangConfig = BitBangConfig{
	DataName:   "GPIO10",
	ClockName:  "GPIO11",
	SelectName: "GPIO8",
}

func pinByName(pin gpio.PinOut, name, fallback string) gpio.PinOut {
	if pin != nil {
		return pin
	}
	if name == "" {
		name = fallback
	}
	if p := gpioreg.ByName(name); p != nil {
		return p
	}
	return nil // rejected by the bus
}

// OpenBitBang opens a bit-banged bus. The host drivers must be initialized
// before pins can be looked up by name.
func OpenBitBang(config *BitBangConfig) (Conn, error) {
	if config == nil {
		config = new(BitBangConfig)
		*config = DefaultBitBangConfig
	}

	c, err := conn.NewShiftOut(
		pinByName(config.Data, config.DataName, DefaultBitBangConfig.DataName),
		pinByName(config.Clock, config.ClockName, DefaultBitBangConfig.ClockName),
		pinByName(config.Select, config.SelectName, DefaultBitBangConfig.SelectName),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port name, empty selects the first available port.
	Port string

	// SpeedHz is the serial clock speed.
	SpeedHz uint32
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	SpeedHz: 8_000_000,
}

// ValidSPISpeeds are common SPI bus speeds the MAX7219 supports.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	10_000_000,
}

// OpenSPI opens a hardware SPI port.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("max7219: invalid SPI speed %dHz", config.SpeedHz)
	}

	c, err := conn.OpenSPI(config.Port, physic.Frequency(config.SpeedHz)*physic.Hertz)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// OpenDrivers uses a configured TinyGo SPI bus, cs is usually a machine.Pin
// configured as output.
func OpenDrivers(bus drivers.SPI, cs conn.Pin) (Conn, error) {
	c, err := conn.NewDrivers(bus, cs)
	if err != nil {
		return nil, err
	}
	return c, nil
}
