package display

import (
	"bytes"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestConsoleShow(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	con := NewConsole(&buf)

	con.Show(time.Second, "", "Connecting to WiFi:", "", "home ...")
	con.Show(0, "", "   ")
	con.Show(0, "     Connected!!")
	c.Assert(buf.String(), qt.Equals,
		"[display] Connecting to WiFi: | home ...\r\n"+
			"[display] Connected!!\r\n")
}

type recorder struct{ lines [][]string }

func (r *recorder) Show(hold time.Duration, lines ...string) {
	r.lines = append(r.lines, lines)
}

func TestTee(t *testing.T) {
	c := qt.New(t)
	a, b := &recorder{}, &recorder{}
	Tee{a, b}.Show(0, "one", "two")
	c.Assert(a.lines, qt.DeepEquals, [][]string{{"one", "two"}})
	c.Assert(b.lines, qt.DeepEquals, a.lines)
}
