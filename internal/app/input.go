package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/config"
	"github.com/depeter/couchcontrols/internal/controls"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"comma":     ebiten.KeyComma,
	"period":    ebiten.KeyPeriod,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"f":         ebiten.KeyF,
	"k":         ebiten.KeyK,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// Key repeat timing in ticks at 60 TPS: 400ms before the first repeat, then
// every 50ms.
const (
	repeatDelayTicks    = 24
	repeatIntervalTicks = 3
)

type binding struct {
	key  ebiten.Key
	code controls.KeyCode
}

// Keyboard turns window key presses into remote key events.
type Keyboard struct {
	bindings []binding
}

// NewKeyboard binds the arrow keys to the d-pad and the configured keys to
// their remote equivalents. Unknown key names are logged and skipped.
func NewKeyboard(kb config.KeybindConfig, logger *zap.Logger) *Keyboard {
	k := &Keyboard{bindings: []binding{
		{ebiten.KeyArrowUp, controls.KeyDpadUp},
		{ebiten.KeyArrowDown, controls.KeyDpadDown},
		{ebiten.KeyArrowLeft, controls.KeyDpadLeft},
		{ebiten.KeyArrowRight, controls.KeyDpadRight},
		{ebiten.KeyBackspace, controls.KeyBack},
	}}
	for name, code := range map[string]controls.KeyCode{
		kb.PlayPause:   controls.KeyMediaPlayPause,
		kb.FastForward: controls.KeyMediaFastForward,
		kb.Rewind:      controls.KeyMediaRewind,
		kb.Select:      controls.KeyDpadCenter,
		kb.Back:        controls.KeyBack,
	} {
		if name == "" {
			continue
		}
		key, ok := parseKey(name)
		if !ok {
			logger.Warn("unknown keybind", zap.String("key", name), zap.Stringer("action", code))
			continue
		}
		k.bindings = append(k.bindings, binding{key, code})
	}
	return k
}

// Poll returns the key events of this tick.
func (k *Keyboard) Poll() []controls.KeyEvent {
	var out []controls.KeyEvent
	for _, b := range k.bindings {
		if inpututil.IsKeyJustReleased(b.key) {
			out = append(out, controls.Up(b.code))
			continue
		}
		if ev, ok := pressEvent(b.code, inpututil.KeyPressDuration(b.key)); ok {
			out = append(out, ev)
		}
	}
	return out
}

// pressEvent maps how many ticks a key has been held to a press or repeat
// event, if this tick produces one.
func pressEvent(code controls.KeyCode, ticks int) (controls.KeyEvent, bool) {
	switch {
	case ticks == 1:
		return controls.Down(code), true
	case ticks > repeatDelayTicks && (ticks-repeatDelayTicks)%repeatIntervalTicks == 0:
		return controls.Repeat(code, (ticks-repeatDelayTicks)/repeatIntervalTicks), true
	}
	return controls.KeyEvent{}, false
}
