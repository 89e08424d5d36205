package mpris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/depeter/couchcontrols/internal/controls"
)

func drain(c *Commands) []controls.KeyEvent {
	var out []controls.KeyEvent
	for {
		select {
		case ev := <-c.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestCommands_Presses(t *testing.T) {
	tests := []struct {
		name string
		call func(*Commands)
		code controls.KeyCode
	}{
		{"play pause", (*Commands).PlayPause, controls.KeyMediaPlayPause},
		{"play", (*Commands).Play, controls.KeyMediaPlay},
		{"pause", (*Commands).Pause, controls.KeyMediaPause},
		{"stop", (*Commands).Stop, controls.KeyMediaStop},
		{"quit", (*Commands).Quit, controls.KeyBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCommands(15*time.Second, 5*time.Second)
			tt.call(c)
			assert.Equal(t, []controls.KeyEvent{controls.Down(tt.code), controls.Up(tt.code)}, drain(c))
		})
	}
}

func TestCommands_SeekForward(t *testing.T) {
	c := NewCommands(15*time.Second, 5*time.Second)
	c.Seek(30 * time.Second)

	assert.Equal(t, []controls.KeyEvent{
		controls.Down(controls.KeyMediaFastForward),
		controls.Repeat(controls.KeyMediaFastForward, 1),
		controls.Repeat(controls.KeyMediaFastForward, 2),
		controls.Up(controls.KeyMediaFastForward),
	}, drain(c))
}

func TestCommands_SeekBackward(t *testing.T) {
	c := NewCommands(15*time.Second, 5*time.Second)
	c.Seek(-10 * time.Second)

	assert.Equal(t, []controls.KeyEvent{
		controls.Down(controls.KeyMediaRewind),
		controls.Repeat(controls.KeyMediaRewind, 1),
		controls.Up(controls.KeyMediaRewind),
	}, drain(c))
}

func TestCommands_SeekZeroDoesNothing(t *testing.T) {
	c := NewCommands(15*time.Second, 5*time.Second)
	c.Seek(0)
	assert.Empty(t, drain(c))
}

func TestSteps(t *testing.T) {
	assert.Equal(t, 1, steps(time.Second, 15*time.Second))
	assert.Equal(t, 2, steps(25*time.Second, 15*time.Second))
	assert.Equal(t, maxSeekSteps, steps(time.Hour, 5*time.Second))
	assert.Equal(t, 1, steps(time.Minute, 0))
}

func TestCommands_SetPositionKeepsLatest(t *testing.T) {
	c := NewCommands(15*time.Second, 5*time.Second)
	c.SetPosition(10 * time.Second)
	c.SetPosition(42 * time.Second)

	select {
	case pos := <-c.Positions():
		assert.Equal(t, 42*time.Second, pos)
	default:
		t.Fatal("no position queued")
	}
	assert.Empty(t, drain(c))
}
