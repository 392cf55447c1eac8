// Package config holds the iGate device configuration.  On a host it is a
// JSON file with environment overrides; on TinyGo builds the values are set
// at link time.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/merliot/igate/wifi"
)

var ErrInvalidCallsign = errors.New("invalid callsign")

type AP struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

type AutoAP struct {
	Password string `json:"password"`
	// Minutes without stations before powering off; 0 never powers off
	PowerOff int `json:"powerOff"`
}

type WiFi struct {
	APs    []AP   `json:"AP"`
	AutoAP AutoAP `json:"autoAP"`
}

// Status configures the status server and MQTT telemetry.  Empty addresses
// disable them.
type Status struct {
	Listen   string `json:"listen"`
	User     string `json:"user"`
	Password string `json:"password"`
	Broker   string `json:"broker"`
}

type Config struct {
	Callsign       string `json:"callsign"`
	WiFi           WiFi   `json:"wifi"`
	BackupDigiMode bool   `json:"backupDigiMode"`
	Status         Status `json:"status"`
}

func Default() *Config {
	return &Config{
		Callsign: "N0CALL-10",
		WiFi: WiFi{
			APs:    []AP{{}},
			AutoAP: AutoAP{Password: "1234567890", PowerOff: 10},
		},
	}
}

// Validate checks the config can drive a device
func (c *Config) Validate() error {
	if !ValidCallsign(c.Callsign) {
		return fmt.Errorf("%w: %q", ErrInvalidCallsign, c.Callsign)
	}
	if p := c.WiFi.AutoAP.Password; p != "" && len(p) < 8 {
		return fmt.Errorf("auto AP password must be at least 8 characters")
	}
	return nil
}

// WiFiConfig converts the config for the wifi Manager
func (c *Config) WiFiConfig() wifi.Config {
	aps := make([]wifi.Credential, 0, len(c.WiFi.APs))
	for _, ap := range c.WiFi.APs {
		aps = append(aps, wifi.Credential{SSID: ap.SSID, Passphrase: ap.Password})
	}
	return wifi.Config{
		Identity:         c.Callsign,
		APs:              aps,
		AutoAPPassphrase: c.WiFi.AutoAP.Password,
		AutoAPPowerOff:   c.WiFi.AutoAP.PowerOff,
		BackupEnabled:    c.BackupDigiMode,
	}
}

// A valid callsign is 1-6 characters of [A-Z] or [0-9], optionally followed
// by "-" and an SSID of 0-15.
func ValidCallsign(s string) bool {
	call, ssid, hasSSID := strings.Cut(s, "-")
	if len(call) == 0 || len(call) > 6 {
		return false
	}
	for _, r := range call {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	if !hasSSID {
		return true
	}
	if len(ssid) == 0 || len(ssid) > 2 {
		return false
	}
	n := 0
	for _, r := range ssid {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
	}
	return n <= 15
}
