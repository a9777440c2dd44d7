package conn

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// MaxSpeed is the fastest serial clock the MAX7219 accepts.
const MaxSpeed = 10 * physic.MegaHertz

// SPI is a hardware SPI port, the port driver handles chip select.
type SPI struct {
	port spi.PortCloser
	conn spi.Conn
}

// OpenSPI opens the named SPI port, use an empty name for the first available
// port. The name often is "SPI<bus>.<chip select>" or "/dev/spidev<bus>.<cs>".
func OpenSPI(name string, speed physic.Frequency) (*SPI, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}
	c, err := NewSPI(port, speed)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return c, nil
}

// NewSPI connects to an opened port in mode 0 with 8 bits per word.
func NewSPI(port spi.PortCloser, speed physic.Frequency) (*SPI, error) {
	if speed <= 0 || speed > MaxSpeed {
		return nil, fmt.Errorf("conn: SPI speed %s out of range (max %s)", speed, MaxSpeed)
	}
	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("conn: SPI connect failed: %w", err)
	}
	return &SPI{
		port: port,
		conn: c,
	}, nil
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s", c.conn)
}

func (c *SPI) Close() error {
	return c.port.Close()
}

// Tx writes w in one transaction.
func (c *SPI) Tx(w []byte) error {
	return c.conn.Tx(w, nil)
}
