//go:build tinygo

package config

// Set with -ldflags "-X github.com/merliot/igate/config.callsign=..."
var (
	callsign       string
	ssid           string
	pass           string
	autoAPPassword string
	backupDigi     string
)

// Load builds the config from values set at link time.  path is ignored;
// there is no filesystem on the device.
func Load(path string) (*Config, error) {
	c := Default()
	if callsign != "" {
		c.Callsign = callsign
	}
	if ssid != "" {
		c.WiFi.APs = []AP{{SSID: ssid, Password: pass}}
	}
	if autoAPPassword != "" {
		c.WiFi.AutoAP.Password = autoAPPassword
	}
	c.BackupDigiMode = backupDigi == "true"
	return c, c.Validate()
}
