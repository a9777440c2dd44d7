package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"periph.io/x/host/v3"

	"github.com/BeatGlow/max7219"
	"github.com/BeatGlow/max7219/delay"
	"github.com/BeatGlow/max7219/pixel"
)

func main() {
	devicesFlag := flag.Int("devices", 4, "Number of chained devices (1-8)")
	rotateFlag := flag.String("rotate", "", "Matrix rotation")
	intensityFlag := flag.Int("intensity", 4, "Brightness (0-15)")
	dataPinFlag := flag.String("din", max7219.DefaultBitBangConfig.DataName, "Data GPIO pin (DIN)")
	clockPinFlag := flag.String("clk", max7219.DefaultBitBangConfig.ClockName, "Clock GPIO pin (CLK)")
	selectPinFlag := flag.String("cs", max7219.DefaultBitBangConfig.SelectName, "Chip select GPIO pin (CS/LOAD)")
	spiPortFlag := flag.String("spi-port", "", "SPI port (default: use first available)")
	speedFlag := flag.Uint("speed", uint(max7219.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	frameFlag := flag.Duration("frame", 100*time.Millisecond, "Animation frame time")
	textFlag := flag.String("text", "", "Show text on 7-segment digits instead of the matrix demo")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <gpio|spi>\n", os.Args[0])
		os.Exit(1)
	}

	var rotation max7219.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = max7219.NoRotation
	case "90", "right", "cw":
		rotation = max7219.Rotate90
	case "180", "flip":
		rotation = max7219.Rotate180
	case "270", "left", "ccw":
		rotation = max7219.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	fmt.Printf("using rotation: %s\n", rotation)

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		conn max7219.Conn
		err  error
	)
	switch busType := flag.Arg(0); busType {
	case "gpio":
		conn, err = max7219.OpenBitBang(&max7219.BitBangConfig{
			DataName:   *dataPinFlag,
			ClockName:  *clockPinFlag,
			SelectName: *selectPinFlag,
		})
	case "spi":
		conn, err = max7219.OpenSPI(&max7219.SPIConfig{
			Port:    *spiPortFlag,
			SpeedHz: uint32(*speedFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	d, err := max7219.New(conn, &max7219.Config{
		Devices:  *devicesFlag,
		Rotation: rotation,
	})
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer d.Close()
	fmt.Printf("using driver: %s\n", d)

	for addr := 0; addr < d.DeviceCount(); addr++ {
		d.SetIntensity(addr, *intensityFlag)
		d.Shutdown(addr, false)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	if *textFlag != "" {
		// Digit 0 is the rightmost position on most 7-segment modules.
		for i, char := range []byte(*textFlag) {
			addr, digit := i/8, 7-i%8
			d.SetChar(addr, digit, char, false)
		}
		if err = d.Err(); err != nil {
			fatal(err)
		}
		fmt.Println("hit control-c to stop...")
		<-stop
		return
	}

	var (
		m     = d.Matrix()
		r     = m.Bounds()
		timer = delay.New(nil)
	)

	// Frame around the chain, saved so the animation can be undone.
	for x := 0; x < r.Max.X; x++ {
		m.Set(x, 0, pixel.On)
		m.Set(x, r.Max.Y-1, pixel.On)
	}
	for y := 0; y < r.Max.Y; y++ {
		m.Set(0, y, pixel.On)
		m.Set(r.Max.X-1, y, pixel.On)
	}
	d.Backup()

	fmt.Println("hit control-c to stop...")
	var offset int
	timer.Delay(*frameFlag)
	for {
		select {
		case <-stop:
			fmt.Println("restoring frame")
			d.Restore()
			if err = d.Err(); err != nil {
				fatal(err)
			}
			return
		default:
		}

		if !timer.Timeout() {
			time.Sleep(time.Millisecond)
			continue
		}
		timer.Delay(*frameFlag)

		for addr := 0; addr < d.DeviceCount(); addr++ {
			d.InvertXY(addr, 1+offset%6, 1+(offset/6)%6)
		}
		offset++
		if offset%36 == 0 {
			d.Restore()
		}

		if err = m.Display(); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
