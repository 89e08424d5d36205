// Package mpris exposes the player on the session bus and turns MPRIS calls
// into remote key events.
package mpris

import (
	"math"
	"time"

	"github.com/depeter/couchcontrols/internal/controls"
)

// Status is what the bus can query about playback. Implementations must be
// safe to call from D-Bus goroutines.
type Status interface {
	Ready() bool
	Playing() bool
	Position() time.Duration
	Duration() time.Duration
}

// Commands converts MPRIS method calls into key event sequences, so they go
// through the same routing as a physical remote.
type Commands struct {
	events    chan controls.KeyEvent
	positions chan time.Duration
	forward time.Duration
	back    time.Duration
}

// NewCommands creates a Commands with the given skip increments, used to turn
// seek offsets into a number of key repeats.
func NewCommands(forward, back time.Duration) *Commands {
	return &Commands{
		events:    make(chan controls.KeyEvent, 64),
		positions: make(chan time.Duration, 1),
		forward:   forward,
		back:      back,
	}
}

// Events returns the channel the host drains on its UI goroutine.
func (c *Commands) Events() <-chan controls.KeyEvent { return c.events }

// Positions returns absolute seek targets. Only the latest pending one is
// kept.
func (c *Commands) Positions() <-chan time.Duration { return c.positions }

// SetPosition requests a jump to pos.
func (c *Commands) SetPosition(pos time.Duration) {
	for {
		select {
		case c.positions <- pos:
			return
		default:
		}
		select {
		case <-c.positions:
		default:
		}
	}
}

func (c *Commands) PlayPause() { c.press(controls.KeyMediaPlayPause) }
func (c *Commands) Play()      { c.press(controls.KeyMediaPlay) }
func (c *Commands) Pause()     { c.press(controls.KeyMediaPause) }
func (c *Commands) Stop()      { c.press(controls.KeyMediaStop) }
func (c *Commands) Quit()      { c.press(controls.KeyBack) }

// Seek emits a held fast-forward or rewind long enough to cover offset.
func (c *Commands) Seek(offset time.Duration) {
	c.emit(seekSequence(offset, c.forward, c.back)...)
}

func (c *Commands) press(code controls.KeyCode) {
	c.emit(controls.Down(code), controls.Up(code))
}

func (c *Commands) emit(evs ...controls.KeyEvent) {
	for _, ev := range evs {
		select {
		case c.events <- ev:
		default:
			return
		}
	}
}

// seekSequence builds the key events for a relative seek. Fast forward only
// skips on repeats, rewind skips on the first press too.
func seekSequence(offset, forward, back time.Duration) []controls.KeyEvent {
	switch {
	case offset > 0:
		n := steps(offset, forward)
		evs := []controls.KeyEvent{controls.Down(controls.KeyMediaFastForward)}
		for i := 1; i <= n; i++ {
			evs = append(evs, controls.Repeat(controls.KeyMediaFastForward, i))
		}
		return append(evs, controls.Up(controls.KeyMediaFastForward))
	case offset < 0:
		n := steps(-offset, back)
		evs := []controls.KeyEvent{controls.Down(controls.KeyMediaRewind)}
		for i := 1; i < n; i++ {
			evs = append(evs, controls.Repeat(controls.KeyMediaRewind, i))
		}
		return append(evs, controls.Up(controls.KeyMediaRewind))
	}
	return nil
}

const maxSeekSteps = 20

func steps(offset, step time.Duration) int {
	if step <= 0 {
		return 1
	}
	n := int(math.Round(float64(offset) / float64(step)))
	return min(max(n, 1), maxSeekSteps)
}
