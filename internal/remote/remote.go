// Package remote reads remote-control keys from Linux evdev devices and turns
// them into controls.KeyEvent values.
package remote

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/depeter/couchcontrols/internal/controls"
)

// Linux input constants.
const (
	evKey = 0x01

	keyValueUp     = 0
	keyValueDown   = 1
	keyValueRepeat = 2
)

// Linux KEY_* codes the remote understands. Arrow keys and Enter are left to
// the window's keyboard input, which sees them too.
var keyCodes = map[uint16]controls.KeyCode{
	128: controls.KeyMediaStop,        // KEY_STOP
	158: controls.KeyBack,             // KEY_BACK
	164: controls.KeyMediaPlayPause,   // KEY_PLAYPAUSE
	166: controls.KeyMediaStop,        // KEY_STOPCD
	168: controls.KeyMediaRewind,      // KEY_REWIND
	200: controls.KeyMediaPlay,        // KEY_PLAYCD
	201: controls.KeyMediaPause,       // KEY_PAUSECD
	207: controls.KeyMediaPlay,        // KEY_PLAY
	208: controls.KeyMediaFastForward, // KEY_FASTFORWARD
	226: controls.KeyHeadsetHook,      // KEY_MEDIA
	352: controls.KeyDpadCenter,       // KEY_OK
	353: controls.KeyDpadCenter,       // KEY_SELECT
}

// RawEvent is a decoded input_event record.
type RawEvent struct {
	Time   time.Time
	Device string // e.g. "event3"
	Type   uint16
	Code   uint16
	Value  int32
}

// decodeEvent parses one input_event record. The kernel struct is a timeval
// followed by u16 type, u16 code and s32 value, so the fields sit in the last
// eight bytes whatever the timeval width.
func decodeEvent(buf []byte) (RawEvent, bool) {
	if len(buf) < 16 {
		return RawEvent{}, false
	}
	tail := buf[len(buf)-8:]
	return RawEvent{
		Type:  binary.LittleEndian.Uint16(tail[0:2]),
		Code:  binary.LittleEndian.Uint16(tail[2:4]),
		Value: int32(binary.LittleEndian.Uint32(tail[4:8])),
	}, true
}

// translator keeps per-key repeat counts across events of one device.
type translator struct {
	repeats map[uint16]int
}

func newTranslator() *translator {
	return &translator{repeats: make(map[uint16]int)}
}

func (t *translator) translate(ev RawEvent) (controls.KeyEvent, bool) {
	if ev.Type != evKey {
		return controls.KeyEvent{}, false
	}
	code, ok := keyCodes[ev.Code]
	if !ok {
		return controls.KeyEvent{}, false
	}
	switch ev.Value {
	case keyValueDown:
		t.repeats[ev.Code] = 0
		return controls.Down(code), true
	case keyValueRepeat:
		t.repeats[ev.Code]++
		return controls.Repeat(code, t.repeats[ev.Code]), true
	case keyValueUp:
		delete(t.repeats, ev.Code)
		return controls.Up(code), true
	}
	return controls.KeyEvent{}, false
}

const recentEventsMax = 8

// Reader delivers remote key events on a channel. The consumer drains
// Events from the UI goroutine.
type Reader struct {
	events chan controls.KeyEvent

	mu     sync.Mutex
	recent []RawEvent
	closed bool
	stop   []func() error
}

func newReader() *Reader {
	return &Reader{events: make(chan controls.KeyEvent, 64)}
}

// Events returns the channel of translated key events.
func (r *Reader) Events() <-chan controls.KeyEvent { return r.events }

// Recent returns a snapshot of the most recent raw key events.
func (r *Reader) Recent() []RawEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RawEvent, len(r.recent))
	copy(out, r.recent)
	return out
}

func (r *Reader) record(ev RawEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recent = append(r.recent, ev)
	if len(r.recent) > recentEventsMax {
		r.recent = r.recent[len(r.recent)-recentEventsMax:]
	}
}

// deliver sends ev without blocking; a full buffer drops it.
func (r *Reader) deliver(ev controls.KeyEvent) bool {
	select {
	case r.events <- ev:
		return true
	default:
		return false
	}
}

// Close stops reading devices. Events already buffered stay readable.
func (r *Reader) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()

	var first error
	for _, fn := range stop {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
