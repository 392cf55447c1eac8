// Package display shows connectivity progress to a human: on a console or
// serial port, or on a small screen on the device.
package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Console writes status lines to w, one screen per Show
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Show writes the non-blank lines, trimmed, on one line separated by " | ".
// hold is ignored; a console keeps its history.
func (c *Console) Show(hold time.Duration, lines ...string) {
	var parts []string
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	if len(parts) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "[display] %s\r\n", strings.Join(parts, " | "))
}

// Shower is anything that can Show status lines
type Shower interface {
	Show(hold time.Duration, lines ...string)
}

// Tee shows on every display in order
type Tee []Shower

func (t Tee) Show(hold time.Duration, lines ...string) {
	for _, s := range t {
		s.Show(hold, lines...)
	}
}
