package igate

import (
	"fmt"

	"github.com/merliot/igate/wifi"
)

// StatusMsg is the JSON msg carried on the status bus.  Path is "state"
// for the greeting a socket gets when it plugs in, "update" after.
type StatusMsg struct {
	Path string
	wifi.Snapshot
}

// Status keeps the latest connectivity snapshot and broadcasts changes on
// its bus
type Status struct {
	mu       rwMutex
	bus      *Bus
	injector *Injector
	last     wifi.Snapshot
}

func NewStatus() *Status {
	s := &Status{}
	s.bus = NewBus("status bus", s.greet)
	s.injector = NewInjector("status injector", s.bus)
	return s
}

func (s *Status) Bus() *Bus {
	return s.bus
}

// greet sends the current snapshot to a newly plugged-in socket
func (s *Status) greet(sock Socketer) {
	var msg Msg
	msg.Marshal(&StatusMsg{"state", s.Snapshot()})
	if err := sock.Send(&msg); err != nil {
		fmt.Printf("Greet %s failed: %s\r\n", sock, err.Error())
	}
}

// Update records snap and broadcasts it if it changed
func (s *Status) Update(snap wifi.Snapshot) {
	s.mu.Lock()
	if snap == s.last {
		s.mu.Unlock()
		return
	}
	s.last = snap
	s.mu.Unlock()

	var msg Msg
	s.injector.Inject(msg.Marshal(&StatusMsg{"update", snap}))
}

func (s *Status) Snapshot() wifi.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
