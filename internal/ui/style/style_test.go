package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"workscheduler/internal/core/phase"
)

func TestColorHex(t *testing.T) {
	assert.Equal(t, Green, ColorHex(phase.KindWork))
	assert.Equal(t, Pink, ColorHex(phase.KindShortBreak))
	assert.Equal(t, Red, ColorHex(phase.KindLongBreak))
}

func TestMarks(t *testing.T) {
	assert.Equal(t, "", Marks(0))
	assert.Equal(t, "", Marks(-2))
	assert.Equal(t, "+", Marks(1))
	assert.Equal(t, "+ + +", Marks(3))
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xe7, G: 0x30, B: 0x5b, A: 0xff}, NRGBA(Red))
	assert.Equal(t, color.NRGBA{R: 0x9b, G: 0xde, B: 0xac, A: 0xff}, NRGBA("9bdeac"))
	assert.Equal(t, color.NRGBA{A: 0xff}, NRGBA("not a colour"))
}
