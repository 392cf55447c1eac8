package igate

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/merliot/igate/wifi"
)

func TestStatusGreet(t *testing.T) {
	c := qt.New(t)
	s := NewStatus()
	s.Update(wifi.Snapshot{Identity: "N0CALL-10", State: wifi.TagConnected, Connected: true, SSID: "home"})

	r := newRecorder("late", SocketFlagBcast, s.Bus())
	s.Bus().plugin(r)

	c.Assert(r.got, qt.HasLen, 1)
	var got StatusMsg
	(&Msg{payload: []byte(r.got[0])}).Unmarshal(&got)
	c.Assert(got.Path, qt.Equals, "state")
	c.Assert(got.SSID, qt.Equals, "home")
	c.Assert(got.State, qt.Equals, wifi.TagConnected)
}

func TestStatusUpdateDedup(t *testing.T) {
	c := qt.New(t)
	s := NewStatus()
	r := newRecorder("listener", SocketFlagBcast, s.Bus())
	s.Bus().plugin(r)
	c.Assert(r.got, qt.HasLen, 1)

	snap := wifi.Snapshot{Identity: "N0CALL-10", State: wifi.TagAttaching}
	s.Update(snap)
	s.Update(snap)
	c.Assert(r.got, qt.HasLen, 2)

	snap.State = wifi.TagDisconnected
	s.Update(snap)
	c.Assert(r.got, qt.HasLen, 3)
	c.Assert(s.Snapshot(), qt.Equals, snap)

	var got StatusMsg
	(&Msg{payload: []byte(r.got[2])}).Unmarshal(&got)
	c.Assert(got.Path, qt.Equals, "update")
	c.Assert(got.State, qt.Equals, wifi.TagDisconnected)
}
