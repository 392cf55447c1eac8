//go:build tinygo && !wioterminal

package main

import (
	"machine"

	"github.com/merliot/igate/display"
	"github.com/merliot/igate/wifi"
)

func newDisplay() wifi.Display {
	return display.NewConsole(machine.Serial)
}
