// Package netstack adapts TinyGo network drivers to wifi.Stack.
//
// A Link wraps a netlink.Netlinker (L2: join, leave, AP mode) and an
// optional netdev.Netdever (L3: our address).  Probe picks the driver for
// the board being built.  Host builds use the sim package instead.
package netstack
