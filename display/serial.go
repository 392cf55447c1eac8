//go:build !tinygo

package display

import (
	"fmt"

	"github.com/tarm/serial"
)

// Serial is a Console on a serial port, e.g. an attached LCD backpack or a
// terminal on the other end of a USB-serial cable
type Serial struct {
	*Console
	port *serial.Port
}

func OpenSerial(name string, baud int) (*Serial, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("opening serial display %s: %w", name, err)
	}
	return &Serial{Console: NewConsole(port), port: port}, nil
}

func (s *Serial) Close() error {
	return s.port.Close()
}
