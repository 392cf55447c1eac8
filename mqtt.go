//go:build !tinygo

package igate

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const mqttTimeout = 5 * time.Second

// mqttSocket publishes status msgs to an MQTT broker, retained, so a
// subscriber always sees the latest state
type mqttSocket struct {
	socket
	client mqtt.Client
	topic  string
}

// StatusTopic is where status msgs for callsign are published
func StatusTopic(callsign string) string {
	return "igate/" + callsign + "/wifi"
}

// DialMQTT connects to broker in the background and plugs an MQTT socket
// into bus.  The broker is told the device is offline if the connection
// drops.
func DialMQTT(broker, callsign string, bus *Bus) Socketer {
	topic := StatusTopic(callsign)
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("igate-"+callsign).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(mqttTimeout).
		SetWill(topic, `{"Path":"offline"}`, 1, true)

	m := &mqttSocket{
		socket: socket{"mqtt:" + broker, SocketFlagBcast, bus},
		client: mqtt.NewClient(opts),
		topic:  topic,
	}

	// With ConnectRetry the token completes on the first successful
	// connect; retries happen in the background
	token := m.client.Connect()
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			fmt.Printf("MQTT connect %s: %s\r\n", broker, err.Error())
		}
	}()

	bus.plugin(m)
	return m
}

func (m *mqttSocket) Close() {
	m.bus.unplug(m)
	m.client.Disconnect(250)
}

// Send publishes without waiting for the broker
func (m *mqttSocket) Send(msg *Msg) error {
	if !m.client.IsConnectionOpen() {
		return fmt.Errorf("%s: not connected", m)
	}
	token := m.client.Publish(m.topic, 1, true, msg.Bytes())
	go func() {
		if token.WaitTimeout(mqttTimeout) && token.Error() != nil {
			fmt.Printf("MQTT publish %s: %s\r\n", m.topic, token.Error())
		}
	}()
	return nil
}
