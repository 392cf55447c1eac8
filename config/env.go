package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

func GetEnv(name string, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	return value
}

// ParseAPs parses a list of "ssid=password" words.  Words are split shell
// style, so an SSID with spaces can be quoted: `home=secret 'Cafe Net=pw'`.
// The first "=" separates SSID from password.
func ParseAPs(s string) ([]AP, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("parsing AP list: %w", err)
	}
	aps := make([]AP, 0, len(words))
	for _, w := range words {
		ssid, pass, _ := strings.Cut(w, "=")
		if ssid == "" {
			return nil, fmt.Errorf("parsing AP list: empty SSID in %q", w)
		}
		aps = append(aps, AP{SSID: ssid, Password: pass})
	}
	return aps, nil
}

// ApplyEnv overrides config values from IGATE_* environment variables
func (c *Config) ApplyEnv() error {
	c.Callsign = GetEnv("IGATE_CALLSIGN", c.Callsign)
	if s, ok := os.LookupEnv("IGATE_WIFI_APS"); ok {
		aps, err := ParseAPs(s)
		if err != nil {
			return err
		}
		c.WiFi.APs = aps
	}
	c.WiFi.AutoAP.Password = GetEnv("IGATE_AUTOAP_PASSWORD", c.WiFi.AutoAP.Password)
	if s, ok := os.LookupEnv("IGATE_AUTOAP_POWEROFF"); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("IGATE_AUTOAP_POWEROFF: %w", err)
		}
		c.WiFi.AutoAP.PowerOff = n
	}
	if s, ok := os.LookupEnv("IGATE_BACKUP_DIGI"); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("IGATE_BACKUP_DIGI: %w", err)
		}
		c.BackupDigiMode = b
	}
	c.Status.Listen = GetEnv("IGATE_STATUS_LISTEN", c.Status.Listen)
	c.Status.User = GetEnv("IGATE_STATUS_USER", c.Status.User)
	c.Status.Password = GetEnv("IGATE_STATUS_PASSWORD", c.Status.Password)
	c.Status.Broker = GetEnv("IGATE_MQTT_BROKER", c.Status.Broker)
	return nil
}
