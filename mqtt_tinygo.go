//go:build tinygo

package igate

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	mqtt "github.com/soypat/natiu-mqtt"
)

const mqttTimeout = 5 * time.Second

// mqttSocket publishes status msgs to an MQTT broker.  Publishing happens on
// its own goroutine so Send never blocks the main loop; if msgs back up only
// the newest is kept.
type mqttSocket struct {
	socket
	broker string
	topic  string
	id     string
	client *mqtt.Client
	conn   net.Conn
	pub    chan []byte
}

func StatusTopic(callsign string) string {
	return "igate/" + callsign + "/wifi"
}

func DialMQTT(broker, callsign string, bus *Bus) Socketer {
	m := &mqttSocket{
		socket: socket{"mqtt:" + broker, SocketFlagBcast, bus},
		broker: broker,
		topic:  StatusTopic(callsign),
		id:     "igate-" + callsign,
		pub:    make(chan []byte, 1),
		client: mqtt.NewClient(mqtt.ClientConfig{
			Decoder: mqtt.DecoderNoAlloc{UserBuffer: make([]byte, 512)},
			OnPub: func(_ mqtt.Header, _ mqtt.VariablesPublish, r io.Reader) error {
				return nil
			},
		}),
	}
	go m.run()
	bus.plugin(m)
	return m
}

func (m *mqttSocket) Close() {
	m.bus.unplug(m)
	close(m.pub)
}

func (m *mqttSocket) Send(msg *Msg) error {
	payload := msg.Bytes()
	for {
		select {
		case m.pub <- payload:
			return nil
		default:
		}
		// drop the stale msg
		select {
		case <-m.pub:
		default:
		}
	}
}

func (m *mqttSocket) connect() error {
	conn, err := net.Dial("tcp", m.broker)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), mqttTimeout)
	defer cancel()
	var varconn mqtt.VariablesConnect
	varconn.SetDefaultMQTT([]byte(m.id))
	if err := m.client.Connect(ctx, conn, &varconn); err != nil {
		conn.Close()
		return err
	}
	m.conn = conn
	return nil
}

func (m *mqttSocket) run() {
	flags, _ := mqtt.NewPublishFlags(mqtt.QoS0, false, true)
	vars := mqtt.VariablesPublish{TopicName: []byte(m.topic)}

	for payload := range m.pub {
		if !m.client.IsConnected() {
			if err := m.connect(); err != nil {
				fmt.Printf("MQTT connect %s: %s\r\n", m.broker, err.Error())
				continue
			}
		}
		if err := m.client.PublishPayload(flags, vars, payload); err != nil {
			fmt.Printf("MQTT publish %s: %s\r\n", m.topic, err.Error())
			m.conn.Close()
		}
	}
	if m.conn != nil {
		m.conn.Close()
	}
}
