//go:build pico

package netstack

import (
	"fmt"
	"net"

	"github.com/soypat/cyw43439"
	"github.com/soypat/cyw43439/whd"
	"tinygo.org/x/drivers/netlink"
)

// picoLink puts a netlink.Netlinker face on the Pico W's CYW43439.  The
// driver speaks its own netlink types, so joins go through its exported
// station calls instead.
type picoLink struct {
	dev    *cyw43439.Device
	notify func(netlink.Event)
	sta    bool
	up     bool
}

func (p *picoLink) NetConnect(params *netlink.ConnectParams) error {
	if params.ConnectMode != netlink.ConnectModeSTA {
		return netlink.ErrNotSupported
	}
	if p.up {
		return netlink.ErrConnected
	}
	if params.Ssid == "" {
		return netlink.ErrMissingSSID
	}
	if !p.sta {
		country := params.Country
		if country == "" {
			country = "XX"
		}
		if err := p.dev.EnableStaMode(whd.CountryCode(country, 0)); err != nil {
			return err
		}
		p.sta = true
	}

	var auth uint32 = whd.CYW43_AUTH_WPA2_AES_PSK
	if params.Passphrase == "" {
		auth = whd.CYW43_AUTH_OPEN
	}
	timeout := params.ConnectTimeout
	if timeout == 0 {
		timeout = netlink.DefaultConnectTimeout
	}
	if err := p.dev.WifiConnectTimeout(params.Ssid, params.Passphrase, auth, timeout); err != nil {
		return fmt.Errorf("%w: %s", netlink.ErrConnectFailed, err.Error())
	}

	p.up = true
	if p.notify != nil {
		p.notify(netlink.EventNetUp)
	}
	return nil
}

// NetDisconnect only forgets the link; this driver has no leave call
func (p *picoLink) NetDisconnect() {
	if !p.up {
		return
	}
	p.up = false
	if p.notify != nil {
		p.notify(netlink.EventNetDown)
	}
}

func (p *picoLink) NetNotify(cb func(netlink.Event)) {
	p.notify = cb
}

func (p *picoLink) GetHardwareAddr() (net.HardwareAddr, error) {
	_, _, _, mac := p.dev.DeviceInfo()
	return mac, nil
}

// Probe returns a Link on the Pico W's CYW43439.  The driver has no L3
// stack of its own, so LocalAddr is empty.
func Probe() *Link {
	spi, cs, wlreg, irq := cyw43439.PicoWSpi(0)
	dev := cyw43439.NewDevice(spi, cs, wlreg, irq, irq)
	if err := dev.Init(cyw43439.DefaultConfig(false)); err != nil {
		fmt.Printf("CYW43439 init failed: %s\r\n", err.Error())
	}
	return New(&picoLink{dev: dev}, nil)
}
