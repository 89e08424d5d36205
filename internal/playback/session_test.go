package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePlayer struct {
	ready    bool
	paused   bool
	position time.Duration
	duration time.Duration
	seeks    []float64
	absolute []float64
	err      error
}

func (f *fakePlayer) Ready() bool  { return f.ready }
func (f *fakePlayer) Paused() bool { return f.paused }

func (f *fakePlayer) Play() error {
	if f.err != nil {
		return f.err
	}
	f.paused = false
	return nil
}

func (f *fakePlayer) Pause() error {
	if f.err != nil {
		return f.err
	}
	f.paused = true
	return nil
}

func (f *fakePlayer) Seek(seconds float64) error {
	f.seeks = append(f.seeks, seconds)
	return f.err
}

func (f *fakePlayer) SeekAbsolute(seconds float64) error {
	f.absolute = append(f.absolute, seconds)
	return f.err
}

func (f *fakePlayer) Position() time.Duration { return f.position }
func (f *fakePlayer) Duration() time.Duration { return f.duration }

func TestSession_NotReadyIgnoresIntents(t *testing.T) {
	p := &fakePlayer{paused: true}
	s := NewSession(p, 0, 0, nil)

	assert.False(t, s.PlayPause())
	assert.False(t, s.Play())
	assert.False(t, s.Pause())
	s.SkipForward()
	s.SkipBack()

	assert.True(t, p.paused)
	assert.Empty(t, p.seeks)
	assert.False(t, s.Playing())
}

func TestSession_PlayPauseToggles(t *testing.T) {
	p := &fakePlayer{ready: true}
	s := NewSession(p, 0, 0, nil)

	assert.False(t, s.PlayPause(), "playing media pauses")
	assert.True(t, p.paused)
	assert.True(t, s.PlayPause(), "paused media resumes")
	assert.False(t, p.paused)
	assert.True(t, s.Playing())
}

func TestSession_PlayAndPause(t *testing.T) {
	p := &fakePlayer{ready: true, paused: true}
	s := NewSession(p, 0, 0, nil)

	assert.True(t, s.Play())
	assert.False(t, p.paused)
	assert.True(t, s.Pause())
	assert.True(t, p.paused)
}

func TestSession_PlayerErrors(t *testing.T) {
	p := &fakePlayer{ready: true, err: errors.New("mpv gone")}
	s := NewSession(p, 0, 0, nil)

	assert.False(t, s.Play())
	assert.False(t, s.Pause())
	// A failed pause leaves the media playing.
	assert.True(t, s.PlayPause())
	s.SkipForward()
	assert.Len(t, p.seeks, 1)
}

func TestSession_SkipIncrements(t *testing.T) {
	p := &fakePlayer{ready: true}

	NewSession(p, 0, 0, nil).SkipForward()
	NewSession(p, 0, 0, nil).SkipBack()
	NewSession(p, 30*time.Second, 10*time.Second, nil).SkipForward()
	NewSession(p, 30*time.Second, 10*time.Second, nil).SkipBack()

	assert.Equal(t, []float64{15, -5, 30, -10}, p.seeks)
}

func TestSession_Progress(t *testing.T) {
	tests := []struct {
		name     string
		position time.Duration
		duration time.Duration
		want     time.Duration
	}{
		{"start", 0, time.Minute, time.Minute},
		{"middle", 20 * time.Second, time.Minute, 40 * time.Second},
		{"past end", 61 * time.Second, time.Minute, 0},
		{"unknown duration", 5 * time.Second, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(&fakePlayer{position: tt.position, duration: tt.duration}, 0, 0, nil)
			assert.Equal(t, tt.want, s.Progress())
		})
	}
}

func TestSession_SeekTo(t *testing.T) {
	p := &fakePlayer{ready: true, duration: 2 * time.Minute}
	s := NewSession(p, 0, 0, nil)

	s.SeekTo(90 * time.Second)
	s.SeekTo(-time.Second)
	s.SeekTo(time.Hour)
	assert.Equal(t, []float64{90, 0, 120}, p.absolute)
	assert.Empty(t, p.seeks)

	p.ready = false
	s.SeekTo(10 * time.Second)
	assert.Len(t, p.absolute, 3)
}
