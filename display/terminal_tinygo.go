//go:build tinygo

package display

import (
	"fmt"
	"image/color"
	"time"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var black = color.RGBA{0, 0, 0, 255}

// Terminal shows status lines on a screen through tinyterm
type Terminal struct {
	term    *tinyterm.Terminal
	display tinyterm.Displayer
}

func NewTerminal(display tinyterm.Displayer) *Terminal {
	term := tinyterm.NewTerminal(display)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	return &Terminal{term: term, display: display}
}

// Show clears the screen, prints the lines and keeps them up for hold
func (t *Terminal) Show(hold time.Duration, lines ...string) {
	w, h := t.display.Size()
	t.display.FillRectangle(0, 0, w, h, black)
	for _, line := range lines {
		fmt.Fprintf(t.term, "%s\r\n", line)
	}
	t.display.Display()
	if hold > 0 {
		time.Sleep(hold)
	}
}
