// Package igate runs the WiFi uplink of an APRS iGate and publishes its
// connectivity status.
//
// A Runner drives a wifi.Manager from the device main loop.  Status changes
// go out on a Bus to any plugged-in Socketer: websocket clients of the
// status Server, and an MQTT broker.
package igate
