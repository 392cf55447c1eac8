package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/merliot/igate/wifi"
)

func clearEnv(c *qt.C) {
	for _, name := range []string{
		"IGATE_CALLSIGN", "IGATE_WIFI_APS", "IGATE_AUTOAP_PASSWORD",
		"IGATE_AUTOAP_POWEROFF", "IGATE_BACKUP_DIGI", "IGATE_STATUS_LISTEN",
		"IGATE_STATUS_USER", "IGATE_STATUS_PASSWORD", "IGATE_MQTT_BROKER",
	} {
		c.Unsetenv(name)
	}
}

func TestValidCallsign(t *testing.T) {
	c := qt.New(t)
	for _, s := range []string{"N0CALL", "EA5JXX-10", "K1ABC-0", "W1AW-15", "A1"} {
		c.Check(ValidCallsign(s), qt.IsTrue, qt.Commentf("%q", s))
	}
	for _, s := range []string{"", "n0call", "TOOLONG1", "K1ABC-", "K1ABC-16", "K1ABC-100", "K1 ABC", "-10"} {
		c.Check(ValidCallsign(s), qt.IsFalse, qt.Commentf("%q", s))
	}
}

func TestParseAPs(t *testing.T) {
	c := qt.New(t)
	aps, err := ParseAPs(`home=secret 'Cafe Net=pa ss=word' open`)
	c.Assert(err, qt.IsNil)
	c.Assert(aps, qt.DeepEquals, []AP{
		{SSID: "home", Password: "secret"},
		{SSID: "Cafe Net", Password: "pa ss=word"},
		{SSID: "open"},
	})

	_, err = ParseAPs(`=nossid`)
	c.Assert(err, qt.ErrorMatches, `parsing AP list: empty SSID in "=nossid"`)
}

func TestLoadWritesDefaults(t *testing.T) {
	c := qt.New(t)
	clearEnv(c)
	path := filepath.Join(c.Mkdir(), "igate.json")

	cfg, err := Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, Default())

	_, err = os.Stat(path)
	c.Assert(err, qt.IsNil)
}

func TestLoadFileAndEnv(t *testing.T) {
	c := qt.New(t)
	clearEnv(c)
	path := filepath.Join(c.Mkdir(), "igate.json")
	err := os.WriteFile(path, []byte(`{
		"callsign": "EA5JXX-10",
		"wifi": {
			"AP": [{"ssid": "home", "password": "secret"}, {"ssid": "", "password": ""}],
			"autoAP": {"password": "abcdefgh", "powerOff": 5}
		},
		"backupDigiMode": true
	}`), 0600)
	c.Assert(err, qt.IsNil)

	cfg, err := Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Callsign, qt.Equals, "EA5JXX-10")
	c.Assert(cfg.WiFi.AutoAP, qt.Equals, AutoAP{Password: "abcdefgh", PowerOff: 5})

	wc := cfg.WiFiConfig()
	c.Assert(wc.Identity, qt.Equals, "EA5JXX-10")
	c.Assert(wc.BackupEnabled, qt.IsTrue)
	c.Assert(wc.AutoAPPowerOff, qt.Equals, 5)
	c.Assert(wifi.NewRegistry(wc.APs).Len(), qt.Equals, 1)

	c.Setenv("IGATE_WIFI_APS", "work=pw1 'my home=pw2'")
	c.Setenv("IGATE_AUTOAP_POWEROFF", "0")
	c.Setenv("IGATE_BACKUP_DIGI", "false")
	cfg, err = Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.WiFi.APs, qt.DeepEquals, []AP{{"work", "pw1"}, {"my home", "pw2"}})
	c.Assert(cfg.WiFi.AutoAP.PowerOff, qt.Equals, 0)
	c.Assert(cfg.BackupDigiMode, qt.IsFalse)
}

func TestLoadInvalid(t *testing.T) {
	c := qt.New(t)
	clearEnv(c)
	path := filepath.Join(c.Mkdir(), "igate.json")
	c.Assert(os.WriteFile(path, []byte(`{"callsign": "bad call"}`), 0600), qt.IsNil)

	_, err := Load(path)
	c.Assert(errors.Is(err, ErrInvalidCallsign), qt.IsTrue)

	c.Assert(os.WriteFile(path, []byte(`{`), 0600), qt.IsNil)
	_, err = Load(path)
	c.Assert(err, qt.ErrorMatches, `parsing .*igate.json: .*`)

	c.Setenv("IGATE_AUTOAP_POWEROFF", "ten")
	c.Assert(os.WriteFile(path, []byte(`{}`), 0600), qt.IsNil)
	_, err = Load(path)
	c.Assert(err, qt.ErrorMatches, `IGATE_AUTOAP_POWEROFF: .*`)
}
