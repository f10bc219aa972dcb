// Package style holds the colours and text shared by the window, tray and
// terminal front-ends.
package style

import (
	"fmt"
	"image/color"
	"strings"

	"workscheduler/internal/core/phase"
)

const (
	Pink       = "#e2979c"
	Red        = "#e7305b"
	Green      = "#9bdeac"
	Yellow     = "#f7f5dd"
	ButtonTint = "#bedbbb"
)

// IdleTitle is shown while no countdown runs.
const IdleTitle = "Timer"

// IdleMarks is shown instead of progress marks after a reset.
const IdleMarks = "Nope"

// ColorHex returns the title colour for a phase kind.
func ColorHex(kind phase.Kind) string {
	switch kind {
	case phase.KindShortBreak:
		return Pink
	case phase.KindLongBreak:
		return Red
	default:
		return Green
	}
}

// Marks renders one "+" per completed work phase.
func Marks(workIterations int) string {
	if workIterations <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat("+ ", workIterations))
}

// NRGBA parses a #rrggbb colour. Malformed input yields opaque black.
func NRGBA(hex string) color.NRGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
