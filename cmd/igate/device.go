//go:build !tinygo

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/merliot/igate"
	"github.com/merliot/igate/config"
	"github.com/merliot/igate/display"
	"github.com/merliot/igate/sim"
	"github.com/merliot/igate/wifi"
)

type device struct {
	stack   wifi.Stack
	display wifi.Display
}

// newDevice simulates the radio.  A serial display is opened on
// IGATE_SERIAL_DISPLAY if set, alongside the console.
func newDevice() *device {
	stack := sim.NewStack(wifi.SystemClock)
	networks, err := config.ParseAPs(os.Getenv("IGATE_SIM_NETWORKS"))
	if err != nil {
		fmt.Printf("IGATE_SIM_NETWORKS: %s\r\n", err.Error())
	}
	for _, n := range networks {
		stack.AddNetwork(n.SSID, n.Password)
	}

	shows := display.Tee{display.NewConsole(os.Stdout)}
	if port := os.Getenv("IGATE_SERIAL_DISPLAY"); port != "" {
		serial, err := display.OpenSerial(port, 115200)
		if err != nil {
			fmt.Printf("%s\r\n", err.Error())
		} else {
			shows = append(shows, serial)
		}
	}

	return &device{stack: stack, display: shows}
}

func (d *device) attach(mgr *wifi.Manager) {}

// serve adds a TLS listener when IGATE_TLS_HOST names a public host
func (d *device) serve(server *igate.Server) {
	host := os.Getenv("IGATE_TLS_HOST")
	if host == "" {
		return
	}
	go func() {
		if err := server.ServeTLS(host); err != nil {
			fmt.Printf("TLS server: %s\r\n", err.Error())
		}
	}()
}

func (d *device) context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
