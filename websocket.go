package igate

import (
	"bytes"
	"fmt"
	"net"
	"time"

	"golang.org/x/net/websocket"
)

// webSocket wraps a websocket.Conn and implements the Socketer interface.
// Sends are queued and written by the socket's own goroutine, so a slow
// client never holds up the bus.  Only the newest msg is queued.
type webSocket struct {
	socket
	mutex
	conn    *websocket.Conn
	closing bool
	out     chan []byte
}

var pingMsg = []byte("ping")
var pongMsg = []byte("pong")

// pingCheck is how long a client may stay silent before it is dropped
const pingCheck = 30 * time.Second

// writeTimeout is how long a client may take to accept one msg
const writeTimeout = 5 * time.Second

func newWebSocket(remoteAddr string, bus *Bus) *webSocket {
	w := &webSocket{out: make(chan []byte, 1)}
	w.socket = socket{"ws:" + remoteAddr, SocketFlagBcast, bus}
	return w
}

func (w *webSocket) Close() {
	w.Lock()
	defer w.Unlock()
	w.closing = true
}

func (w *webSocket) isClosing() bool {
	w.Lock()
	defer w.Unlock()
	return w.closing
}

// Send queues msg, replacing any msg not yet written.  It never blocks.
func (w *webSocket) Send(msg *Msg) error {
	for {
		select {
		case w.out <- msg.payload:
			return nil
		default:
		}
		// drop the stale msg
		select {
		case <-w.out:
		default:
		}
	}
}

func (w *webSocket) write(payload string) error {
	w.Lock()
	defer w.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return websocket.Message.Send(w.conn, payload)
}

// serveWriter writes queued msgs until done is closed.  A failed write
// closes the connection, which ends serveServer.
func (w *webSocket) serveWriter(done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-w.out:
			if err := w.write(string(payload)); err != nil {
				fmt.Printf("Error writing, disconnecting %s: %s\r\n", w, err.Error())
				w.conn.Close()
				return
			}
		}
	}
}

func (w *webSocket) serve(conn *websocket.Conn) {
	fmt.Printf("Connecting %s\r\n", w)
	w.conn = conn
	done := make(chan struct{})
	go w.serveWriter(done)
	w.bus.plugin(w)

	w.serveServer()

	fmt.Printf("Disconnecting %s\r\n", w)
	w.bus.unplug(w)
	close(done)
}

// serveServer reads from the client until it goes away, answering pings.
// Status clients only listen; anything else they send is dropped.
func (w *webSocket) serveServer() {
	lastRecv := time.Now()

	for {
		var payload []byte

		if w.isClosing() {
			fmt.Printf("Closing %s\r\n", w)
			return
		}

		w.conn.SetReadDeadline(time.Now().Add(time.Second))
		err := websocket.Message.Receive(w.conn, &payload)
		if err == nil {
			lastRecv = time.Now()
			if bytes.Equal(payload, pingMsg) {
				if err := w.write(string(pongMsg)); err != nil {
					fmt.Printf("Error sending pong, disconnecting %s: %s\r\n", w, err.Error())
					return
				}
			}
			continue
		}

		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			if time.Since(lastRecv) > pingCheck {
				fmt.Printf("Timeout, disconnecting %s\r\n", w)
				return
			}
			continue
		}

		fmt.Printf("Disconnecting %s: %s\r\n", w, err.Error())
		return
	}
}
