package igate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/net/websocket"

	"github.com/merliot/igate/wifi"
)

func newTestServer(c *qt.C) (*Status, *Server, *httptest.Server) {
	status := NewStatus()
	status.Update(wifi.Snapshot{Identity: "N0CALL-10", State: wifi.TagAutoAP, AutoAP: "N0CALL-10 AP"})
	srv := NewServer("", status)
	ts := httptest.NewServer(srv.Handler)
	c.Cleanup(ts.Close)
	return status, srv, ts
}

func TestServeStatus(t *testing.T) {
	c := qt.New(t)
	_, _, ts := newTestServer(c)

	resp, err := http.Get(ts.URL + "/status")
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(resp.Header.Get("Content-Type"), qt.Equals, "application/json")

	var snap wifi.Snapshot
	c.Assert(json.NewDecoder(resp.Body).Decode(&snap), qt.IsNil)
	c.Assert(snap.State, qt.Equals, wifi.TagAutoAP)
	c.Assert(snap.AutoAP, qt.Equals, "N0CALL-10 AP")
}

func TestServeStatusMethod(t *testing.T) {
	c := qt.New(t)
	_, _, ts := newTestServer(c)

	resp, err := http.Post(ts.URL+"/status", "application/json", strings.NewReader("{}"))
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusMethodNotAllowed)
}

func TestBasicAuth(t *testing.T) {
	c := qt.New(t)
	_, srv, ts := newTestServer(c)
	srv.BasicAuth("admin", "hunter2")

	resp, err := http.Get(ts.URL + "/status")
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusUnauthorized)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/status", nil)
	c.Assert(err, qt.IsNil)
	req.SetBasicAuth("admin", "wrong")
	resp, err = http.DefaultClient.Do(req)
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusUnauthorized)

	req.SetBasicAuth("admin", "hunter2")
	resp, err = http.DefaultClient.Do(req)
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
}

func TestWebSocketStream(t *testing.T) {
	c := qt.New(t)
	status, _, ts := newTestServer(c)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, err := websocket.Dial(url, "", ts.URL)
	c.Assert(err, qt.IsNil)
	defer ws.Close()

	var got StatusMsg
	c.Assert(websocket.JSON.Receive(ws, &got), qt.IsNil)
	c.Assert(got.Path, qt.Equals, "state")
	c.Assert(got.State, qt.Equals, wifi.TagAutoAP)

	c.Assert(websocket.Message.Send(ws, "ping"), qt.IsNil)
	var pong string
	c.Assert(websocket.Message.Receive(ws, &pong), qt.IsNil)
	c.Assert(pong, qt.Equals, "pong")

	status.Update(wifi.Snapshot{Identity: "N0CALL-10", State: wifi.TagDisconnected})
	c.Assert(websocket.JSON.Receive(ws, &got), qt.IsNil)
	c.Assert(got.Path, qt.Equals, "update")
	c.Assert(got.State, qt.Equals, wifi.TagDisconnected)
}
