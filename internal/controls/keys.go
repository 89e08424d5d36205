package controls

import "fmt"

// KeyCode identifies a remote-control or keyboard key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyDpadUp
	KeyDpadDown
	KeyDpadLeft
	KeyDpadRight
	KeyDpadCenter
	KeyEnter
	KeyBack
	KeyMediaPlayPause
	KeyHeadsetHook
	KeyMediaPlay
	KeyMediaPause
	KeyMediaRewind
	KeyMediaFastForward
	KeyMediaStop
)

var keyNames = map[KeyCode]string{
	KeyUnknown:          "unknown",
	KeyDpadUp:           "dpad_up",
	KeyDpadDown:         "dpad_down",
	KeyDpadLeft:         "dpad_left",
	KeyDpadRight:        "dpad_right",
	KeyDpadCenter:       "dpad_center",
	KeyEnter:            "enter",
	KeyBack:             "back",
	KeyMediaPlayPause:   "media_play_pause",
	KeyHeadsetHook:      "headset_hook",
	KeyMediaPlay:        "media_play",
	KeyMediaPause:       "media_pause",
	KeyMediaRewind:      "media_rewind",
	KeyMediaFastForward: "media_fast_forward",
	KeyMediaStop:        "media_stop",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// KeyAction is the phase of a key event.
type KeyAction int

const (
	ActionDown KeyAction = iota
	ActionUp
	// ActionMultiple covers anything that is neither a press nor a release.
	// The controller never handles it.
	ActionMultiple
)

func (a KeyAction) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMultiple:
		return "multiple"
	}
	return "unknown"
}

// KeyEvent is a single key transition. RepeatCount is 0 for the initial press
// and grows while the key is held.
type KeyEvent struct {
	Code        KeyCode
	Action      KeyAction
	RepeatCount int
}

// Down returns a first-press event for code.
func Down(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Action: ActionDown}
}

// Repeat returns a held-key event for code.
func Repeat(code KeyCode, count int) KeyEvent {
	return KeyEvent{Code: code, Action: ActionDown, RepeatCount: count}
}

// Up returns a release event for code.
func Up(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Action: ActionUp}
}

func (e KeyEvent) String() string {
	return fmt.Sprintf("%s %s (repeat %d)", e.Code, e.Action, e.RepeatCount)
}
