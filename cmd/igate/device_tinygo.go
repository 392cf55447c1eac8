//go:build tinygo

package main

import (
	"context"
	"log/slog"
	"machine"

	"github.com/merliot/igate"
	"github.com/merliot/igate/netstack"
	"github.com/merliot/igate/wifi"
)

type device struct {
	stack   wifi.Stack
	display wifi.Display
}

type led struct{ pin machine.Pin }

func (l led) Set(on bool) { l.pin.Set(on) }

func newDevice() *device {
	return &device{stack: netstack.Probe(), display: newDisplay()}
}

func (d *device) attach(mgr *wifi.Manager) {
	log := slog.New(slog.NewTextHandler(machine.Serial, nil))
	if link, ok := d.stack.(*netstack.Link); ok {
		link.SetLogger(log)
	}
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	mgr.SetIndicator(led{machine.LED})
	mgr.SetLogger(log)
}

func (d *device) serve(server *igate.Server) {}

func (d *device) context() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}
