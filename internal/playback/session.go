// Package playback adapts a media player to the controls listener interfaces.
package playback

import (
	"time"

	"go.uber.org/zap"
)

// MediaPlayer is the part of a player a Session drives. *player.Player
// satisfies it.
type MediaPlayer interface {
	Ready() bool
	Paused() bool
	Play() error
	Pause() error
	Seek(seconds float64) error
	SeekAbsolute(seconds float64) error
	Position() time.Duration
	Duration() time.Duration
}

const (
	DefaultSkipForward = 15 * time.Second
	DefaultSkipBack    = 5 * time.Second
)

// Session turns control intents into player commands. It implements
// controls.EventListener and controls.ProgressListener.
type Session struct {
	player  MediaPlayer
	log     *zap.Logger
	forward time.Duration
	back    time.Duration
}

// NewSession creates a Session. Non-positive increments fall back to the
// defaults.
func NewSession(p MediaPlayer, forward, back time.Duration, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if forward <= 0 {
		forward = DefaultSkipForward
	}
	if back <= 0 {
		back = DefaultSkipBack
	}
	return &Session{player: p, log: logger, forward: forward, back: back}
}

func (s *Session) SkipForward() { s.seek(s.forward) }
func (s *Session) SkipBack()    { s.seek(-s.back) }

func (s *Session) seek(d time.Duration) {
	if !s.player.Ready() {
		return
	}
	if err := s.player.Seek(d.Seconds()); err != nil {
		s.log.Warn("seek failed", zap.Duration("offset", d), zap.Error(err))
	}
}

// SeekTo jumps to pos, clamped to the media.
func (s *Session) SeekTo(pos time.Duration) {
	if !s.player.Ready() {
		return
	}
	pos = min(max(pos, 0), s.player.Duration())
	if err := s.player.SeekAbsolute(pos.Seconds()); err != nil {
		s.log.Warn("seek failed", zap.Duration("position", pos), zap.Error(err))
	}
}

// PlayPause toggles playback and reports whether media is playing afterwards.
func (s *Session) PlayPause() bool {
	if !s.player.Ready() {
		return false
	}
	if s.player.Paused() {
		return s.Play()
	}
	return !s.Pause()
}

// Play resumes playback and reports whether it succeeded.
func (s *Session) Play() bool {
	if !s.player.Ready() {
		return false
	}
	if err := s.player.Play(); err != nil {
		s.log.Warn("play failed", zap.Error(err))
		return false
	}
	return true
}

// Pause pauses playback and reports whether it succeeded.
func (s *Session) Pause() bool {
	if !s.player.Ready() {
		return false
	}
	if err := s.player.Pause(); err != nil {
		s.log.Warn("pause failed", zap.Error(err))
		return false
	}
	return true
}

// Progress returns the remaining time, never negative.
func (s *Session) Progress() time.Duration {
	return max(s.player.Duration()-s.player.Position(), 0)
}

// Playing reports whether media is loaded and not paused.
func (s *Session) Playing() bool {
	return s.player.Ready() && !s.player.Paused()
}

func (s *Session) Ready() bool             { return s.player.Ready() }
func (s *Session) Position() time.Duration { return s.player.Position() }
func (s *Session) Duration() time.Duration { return s.player.Duration() }
