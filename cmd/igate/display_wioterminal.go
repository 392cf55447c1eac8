//go:build wioterminal

package main

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"

	"github.com/merliot/igate/display"
	"github.com/merliot/igate/wifi"
)

// newDisplay shows status on the built-in LCD and echoes it to the serial
// console
func newDisplay() wifi.Display {
	machine.SPI3.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40000000,
	})
	lcd := ili9341.NewSPI(machine.SPI3, machine.LCD_DC, machine.LCD_SS_PIN, machine.LCD_RESET)
	lcd.Configure(ili9341.Config{})
	lcd.SetRotation(ili9341.Rotation270)

	backlight := machine.LCD_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})
	backlight.High()

	return display.Tee{display.NewTerminal(lcd), display.NewConsole(machine.Serial)}
}
