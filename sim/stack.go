package sim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/merliot/igate/wifi"
)

var ErrAPActive = errors.New("access point already started")

// Join records one join request seen by the Stack
type Join struct {
	SSID string
	At   time.Time
}

// Stack is a simulated network stack.  A join resolves immediately against
// the set of reachable networks: the right passphrase joins, a wrong one
// fails authentication and an unknown SSID is not found.
type Stack struct {
	mu       sync.Mutex
	clock    wifi.Clock
	networks map[string]string
	status   wifi.Status
	ssid     string
	forced   bool
	apSSID   string
	apActive bool
	stations int
	joins    []Join
}

func NewStack(clock wifi.Clock) *Stack {
	return &Stack{
		clock:    clock,
		networks: make(map[string]string),
		status:   wifi.StatusIdle,
	}
}

// AddNetwork makes a network reachable
func (s *Stack) AddNetwork(ssid, passphrase string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[ssid] = passphrase
}

// RemoveNetwork makes a network unreachable.  A station joined to it loses
// its connection.
func (s *Stack) RemoveNetwork(ssid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.networks, ssid)
	if s.ssid == ssid && s.status == wifi.StatusJoined {
		s.status = wifi.StatusConnectionLost
		s.ssid = ""
	}
}

// ForceStatus pins the station status, overriding join results until
// Unforce is called
func (s *Stack) ForceStatus(status wifi.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.forced = true
}

func (s *Stack) Unforce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced = false
}

func (s *Stack) SetStations(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations = n
}

// Joins returns the join requests seen so far, oldest first
func (s *Stack) Joins() []Join {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Join(nil), s.joins...)
}

func (s *Stack) APActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apActive
}

func (s *Stack) APSSID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apSSID
}

func (s *Stack) Join(ssid, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joins = append(s.joins, Join{SSID: ssid, At: s.clock.Now()})
	if s.forced {
		return nil
	}
	s.ssid = ""
	want, ok := s.networks[ssid]
	switch {
	case !ok:
		s.status = wifi.StatusNoSSID
	case want != passphrase:
		s.status = wifi.StatusWrongCredentials
	default:
		s.status = wifi.StatusJoined
		s.ssid = ssid
	}
	return nil
}

func (s *Stack) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.forced {
		s.status = wifi.StatusDisconnected
	}
	s.ssid = ""
	return nil
}

func (s *Stack) Status() wifi.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Stack) LocalAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != wifi.StatusJoined {
		return ""
	}
	return "192.168.4.2"
}

func (s *Stack) StartAccessPoint(ssid, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.apActive {
		return fmt.Errorf("%s: %w", s.apSSID, ErrAPActive)
	}
	s.apSSID, s.apActive = ssid, true
	return nil
}

func (s *Stack) StopAccessPoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apActive = false
	s.stations = 0
	return nil
}

func (s *Stack) StationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stations
}
