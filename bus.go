package igate

import (
	"fmt"
)

var defaultMaxSockets = 8

// Bus is a logical broadcast bus for status msgs.  Sockets plugged into the
// bus receive every msg broadcast by another socket, if they are
// broadcast-ready.
type Bus struct {
	name      string
	socketsMu rwMutex
	sockets   map[Socketer]bool
	socketQ   chan bool
	connect   func(Socketer)
}

// NewBus returns a new bus.  connect, if not nil, is called each time a
// socket is plugged in.
func NewBus(name string, connect func(Socketer)) *Bus {
	if connect == nil {
		connect = func(Socketer) { /* don't notify */ }
	}
	return &Bus{
		name:    name,
		sockets: make(map[Socketer]bool),
		socketQ: make(chan bool, defaultMaxSockets),
		connect: connect,
	}
}

func (b *Bus) Name() string {
	return b.name
}

// MaxSockets sets the maximum number of socket connections that can be made to
// the bus.  Any socket connection attempts past the maximum will block until
// other sockets drop.
func (b *Bus) MaxSockets(maxSockets int) {
	b.socketQ = make(chan bool, maxSockets)
}

// plugin the socket to the bus
func (b *Bus) plugin(s Socketer) {
	// block here when socketQ is full
	b.socketQ <- true

	b.socketsMu.Lock()
	b.sockets[s] = true
	b.socketsMu.Unlock()

	b.connect(s)
}

// unplug the socket from the bus
func (b *Bus) unplug(s Socketer) {
	b.socketsMu.Lock()
	_, ok := b.sockets[s]
	delete(b.sockets, s)
	b.socketsMu.Unlock()

	// release one from the socketQ
	if ok {
		<-b.socketQ
	}
}

// broadcast msg to all broadcast-ready sockets, skipping the source socket
func (b *Bus) broadcast(msg *Msg) {
	b.socketsMu.RLock()
	defer b.socketsMu.RUnlock()
	for sock := range b.sockets {
		if msg.src != sock && sock.TestFlag(SocketFlagBcast) {
			if err := sock.Send(msg); err != nil {
				fmt.Printf("Bcast to %s failed: %s\r\n", sock, err.Error())
			}
		}
	}
}
