package conn

import (
	"errors"

	"tinygo.org/x/drivers"
)

// ErrNoBus is returned when no SPI bus is provided.
var ErrNoBus = errors.New("conn: SPI bus is nil")

// Pin is a chip select output, machine.Pin on TinyGo targets satisfies it.
type Pin interface {
	High()
	Low()
}

// Drivers is a TinyGo SPI bus with a software driven chip select.
type Drivers struct {
	bus drivers.SPI
	cs  Pin
}

// NewDrivers configures cs idle high. The bus must already be configured for
// mode 0, MSB first at 10 MHz or less.
func NewDrivers(bus drivers.SPI, cs Pin) (*Drivers, error) {
	if bus == nil {
		return nil, ErrNoBus
	}
	if cs == nil {
		return nil, ErrSelectPin
	}
	cs.High()
	return &Drivers{
		bus: bus,
		cs:  cs,
	}, nil
}

func (c *Drivers) String() string {
	return "TinyGo SPI"
}

func (c *Drivers) Close() error {
	c.cs.High()
	return nil
}

// Tx writes w in one chip select frame.
func (c *Drivers) Tx(w []byte) error {
	c.cs.Low()
	err := c.bus.Tx(w, nil)
	c.cs.High()
	return err
}
