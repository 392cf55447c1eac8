//go:build tinygo && !pico

package netstack

import "tinygo.org/x/drivers/netlink/probe"

// Probe returns a Link on the board's WiFi co-processor
func Probe() *Link {
	link, dev := probe.Probe()
	return New(link, dev)
}
