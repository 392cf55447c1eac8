// Package wifi keeps an iGate's WiFi uplink alive.
//
// At boot the Manager walks the known networks in order until one joins, or
// falls back to hosting its own access point.  After boot, CheckWiFi and
// CheckAutoAPPowerOff are polled from the main loop; neither blocks.  All
// waiting is done by comparing timestamps from the Manager's Clock.
package wifi

import "time"

// Stack is the device's network stack
type Stack interface {
	// Join starts joining the network as a station
	Join(ssid, passphrase string) error
	// Disconnect leaves the current network
	Disconnect() error
	// Status returns the station status
	Status() Status
	// LocalAddr is the station's address, if joined
	LocalAddr() string
	// StartAccessPoint switches the radio to access point mode
	StartAccessPoint(ssid, passphrase string) error
	// StopAccessPoint powers off the access point
	StopAccessPoint() error
	// StationCount is the number of stations attached to the access point
	StationCount() int
}

// Display shows short status lines to a human.  hold is how long the lines
// should stay up; zero means until replaced.
type Display interface {
	Show(hold time.Duration, lines ...string)
}

// Clock is the Manager's time source
type Clock interface {
	Now() time.Time
	Sleep(time.Duration)
}

// Indicator is a status LED
type Indicator interface {
	Set(on bool)
}

// Companion is a co-located short-range radio (e.g. Bluetooth) that is
// powered down once WiFi is set up
type Companion interface {
	Stop() error
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock
var SystemClock Clock = systemClock{}

type nopDisplay struct{}

func (nopDisplay) Show(time.Duration, ...string) {}
