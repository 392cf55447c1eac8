package netstack

import (
	"errors"
	"log/slog"
	"net/netip"
	"sync"
	"time"

	"github.com/merliot/igate/wifi"
	"tinygo.org/x/drivers/netlink"
)

// Addrer reports the address assigned to the interface.  netdev.Netdever
// is an Addrer.
type Addrer interface {
	Addr() (netip.Addr, error)
}

// Link is a wifi.Stack on a TinyGo netlink driver.  NetConnect blocks, so
// joins run in their own goroutine and report back through the status.
type Link struct {
	link netlink.Netlinker
	dev  Addrer
	log  *slog.Logger

	mu       sync.Mutex
	status   wifi.Status
	apActive bool
	joining  bool
	warned   bool
}

func New(link netlink.Netlinker, dev Addrer) *Link {
	l := &Link{link: link, dev: dev, log: slog.Default(), status: wifi.StatusIdle}
	link.NetNotify(l.notify)
	return l
}

func (l *Link) SetLogger(log *slog.Logger) {
	l.log = log
}

func (l *Link) notify(e netlink.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch e {
	case netlink.EventNetUp:
		if !l.apActive {
			l.status = wifi.StatusJoined
		}
	case netlink.EventNetDown:
		if l.status == wifi.StatusJoined {
			l.status = wifi.StatusConnectionLost
		}
	}
}

// statusOf maps a NetConnect error to a station status
func statusOf(err error) wifi.Status {
	switch {
	case err == nil:
		return wifi.StatusJoined
	case errors.Is(err, netlink.ErrMissingSSID):
		return wifi.StatusNoSSID
	case errors.Is(err, netlink.ErrAuthFailure),
		errors.Is(err, netlink.ErrShortPassphrase),
		errors.Is(err, netlink.ErrConnectFailed):
		return wifi.StatusWrongCredentials
	case errors.Is(err, netlink.ErrConnectTimeout):
		return wifi.StatusDisconnected
	case errors.Is(err, netlink.ErrConnected):
		return wifi.StatusJoined
	default:
		return wifi.StatusIdle
	}
}

func (l *Link) Join(ssid, passphrase string) error {
	l.mu.Lock()
	if l.joining {
		l.mu.Unlock()
		return netlink.ErrConnected
	}
	l.joining = true
	l.status = wifi.StatusIdle
	l.mu.Unlock()

	go func() {
		err := l.link.NetConnect(&netlink.ConnectParams{
			ConnectMode:    netlink.ConnectModeSTA,
			Ssid:           ssid,
			Passphrase:     passphrase,
			Retries:        1,
			ConnectTimeout: 10 * time.Second,
		})
		l.mu.Lock()
		l.status = statusOf(err)
		l.joining = false
		l.mu.Unlock()
	}()

	return nil
}

func (l *Link) Disconnect() error {
	l.link.NetDisconnect()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = wifi.StatusDisconnected
	return nil
}

func (l *Link) Status() wifi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

func (l *Link) LocalAddr() string {
	if l.dev == nil {
		return ""
	}
	addr, err := l.dev.Addr()
	if err != nil {
		return ""
	}
	return addr.String()
}

func (l *Link) StartAccessPoint(ssid, passphrase string) error {
	l.mu.Lock()
	l.apActive = true
	l.mu.Unlock()
	err := l.link.NetConnect(&netlink.ConnectParams{
		ConnectMode: netlink.ConnectModeAP,
		Ssid:        ssid,
		Passphrase:  passphrase,
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.apActive = false
		return err
	}
	if !l.warned {
		l.warned = true
		l.log.Warn("radio can't count AP stations, idle shutdown ignores attached clients")
	}
	return nil
}

func (l *Link) StopAccessPoint() error {
	l.link.NetDisconnect()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.apActive = false
	l.status = wifi.StatusDisconnected
	return nil
}

// StationCount is always 0: netlink has no way to list attached stations,
// so an AP with a power-off period set will power off after that period
// regardless of use.  StartAccessPoint warns about this once.
func (l *Link) StationCount() int {
	return 0
}
