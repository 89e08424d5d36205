package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/config"
	"github.com/depeter/couchcontrols/internal/controls"
)

func TestPressEvent(t *testing.T) {
	var got []controls.KeyEvent
	for ticks := 0; ticks <= repeatDelayTicks+3*repeatIntervalTicks; ticks++ {
		if ev, ok := pressEvent(controls.KeyDpadLeft, ticks); ok {
			got = append(got, ev)
		}
	}

	assert.Equal(t, []controls.KeyEvent{
		controls.Down(controls.KeyDpadLeft),
		controls.Repeat(controls.KeyDpadLeft, 1),
		controls.Repeat(controls.KeyDpadLeft, 2),
		controls.Repeat(controls.KeyDpadLeft, 3),
	}, got)
}

func TestParseKey(t *testing.T) {
	k, ok := parseKey("Space")
	require.True(t, ok)
	assert.Equal(t, ebiten.KeySpace, k)

	_, ok = parseKey("hyper")
	assert.False(t, ok)
}

func TestNewKeyboard_Bindings(t *testing.T) {
	kb := config.DefaultConfig().Keybinds
	kb.Rewind = "nonsense"

	k := NewKeyboard(kb, zap.NewNop())

	codes := map[ebiten.Key]controls.KeyCode{}
	for _, b := range k.bindings {
		codes[b.key] = b.code
	}
	assert.Equal(t, controls.KeyMediaPlayPause, codes[ebiten.KeySpace])
	assert.Equal(t, controls.KeyMediaFastForward, codes[ebiten.KeyF])
	assert.Equal(t, controls.KeyDpadCenter, codes[ebiten.KeyEnter])
	assert.Equal(t, controls.KeyBack, codes[ebiten.KeyEscape])
	assert.Equal(t, controls.KeyDpadLeft, codes[ebiten.KeyArrowLeft])
	assert.NotContains(t, codes, ebiten.KeyR)
}
