// Package player wraps libmpv for embedded playback.
package player

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/gen2brain/go-mpv"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/config"
)

// Player wraps libmpv for video playback.
type Player struct {
	m        *mpv.Mpv
	log      *zap.Logger
	mu       sync.Mutex
	playing  bool
	ready    bool
	paused   bool
	duration float64
	position float64

	// OnReady fires once per file, when its duration is first known.
	OnReady       func(duration time.Duration)
	OnPlaybackEnd func()
}

// New creates an mpv instance and sets its options. Call Start to initialize it.
func New(cfg *config.Config, logger *zap.Logger) (*Player, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Player{log: logger}
	m := mpv.New()
	p.m = m

	// mpv owns the render pipeline; the controls are drawn through osd-overlay
	p.must(m.SetOptionString("hwdec", cfg.Playback.HWAccel))
	p.must(m.SetOptionString("vo", "gpu"))
	p.must(m.SetOptionString("osc", "no"))
	p.must(m.SetOptionString("input-default-bindings", "no"))
	p.must(m.SetOptionString("keep-open", "yes"))
	p.must(m.SetOptionString("idle", "yes"))

	if cfg.Playback.AudioLanguage != "" {
		p.must(m.SetOptionString("alang", cfg.Playback.AudioLanguage))
	}
	if cfg.Playback.SubLanguage != "" {
		p.must(m.SetOptionString("slang", cfg.Playback.SubLanguage))
	}
	p.must(m.SetOptionString("volume", strconv.Itoa(cfg.Playback.Volume)))

	return p, nil
}

// Start initializes mpv and begins observing playback properties. Options
// that only apply before initialization (wid) must be set first.
func (p *Player) Start() error {
	if err := p.m.Initialize(); err != nil {
		return fmt.Errorf("mpv init: %w", err)
	}

	p.m.ObserveProperty(0, "time-pos", mpv.FormatDouble)
	p.m.ObserveProperty(0, "duration", mpv.FormatDouble)
	p.m.ObserveProperty(0, "pause", mpv.FormatFlag)

	go p.eventLoop()
	return nil
}

func (p *Player) must(err error) {
	if err != nil {
		p.log.Warn("mpv option", zap.Error(err))
	}
}

// SetWindowID sets the native window handle for embedded playback.
func (p *Player) SetWindowID(wid int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.SetOptionString("wid", strconv.FormatInt(wid, 10))
}

// LoadFile starts playback of a URL, optionally from start seconds in.
func (p *Player) LoadFile(url string, start float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.ready = false
	p.paused = false
	p.duration = 0
	p.position = 0
	args := []string{"loadfile", url, "replace"}
	if start > 0 {
		// mpv >= 0.38 takes an insertion index before the options.
		args = append(args, "-1", fmt.Sprintf("start=%.1f", start))
	}
	p.log.Info("loading media", zap.String("url", url), zap.Float64("start", start))
	return p.m.Command(args)
}

// Seek seeks relative to the current position.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "relative"})
}

// SeekAbsolute seeks to an absolute position.
func (p *Player) SeekAbsolute(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "absolute"})
}

func (p *Player) Play() error  { return p.setPause(false) }
func (p *Player) Pause() error { return p.setPause(true) }

func (p *Player) setPause(paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.m.SetPropertyString("pause", lo.Ternary(paused, "yes", "no")); err != nil {
		return err
	}
	// The property-change event catches up later; answer from intent now.
	p.paused = paused
	return nil
}

// Stop stops playback.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.ready = false
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

// SetOSDOverlay shows ASS events in overlay slot id, laid out on a resX x resY
// canvas.
func (p *Player) SetOSDOverlay(id int, ass string, resX, resY int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return osdOverlaySet(p.m, id, ass, resX, resY)
}

// RemoveOSDOverlay clears overlay slot id.
func (p *Player) RemoveOSDOverlay(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return osdOverlayRemove(p.m, id)
}

// Playing returns whether media is currently loaded.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Ready reports whether a file is loaded and its duration known.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Paused returns the current pause state.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return secondsToDuration(p.position)
}

// Duration returns the media duration.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return secondsToDuration(p.duration)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			p.handleProperty(ev.Property())

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.ready = false
			p.mu.Unlock()
			if ev.Data != nil {
				p.log.Info("mpv end-file",
					zap.Any("reason", ev.EndFile().Reason),
					zap.Bool("wasPlaying", wasPlaying))
			}
			// Stop() clears playing first, so its end-file is ignored here.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}

func (p *Player) handleProperty(prop mpv.EventProperty) {
	var readyAt float64
	p.mu.Lock()
	switch prop.Name {
	case "time-pos":
		if v, ok := prop.Data.(float64); ok {
			p.position = v
		}
	case "duration":
		if v, ok := prop.Data.(float64); ok {
			p.duration = v
			if v > 0 && p.playing && !p.ready {
				p.ready = true
				readyAt = v
			}
		}
	case "pause":
		if v, ok := prop.Data.(int); ok {
			p.paused = v == 1
		}
	}
	p.mu.Unlock()

	if readyAt > 0 {
		p.log.Debug("media ready", zap.Float64("duration", readyAt))
		if p.OnReady != nil {
			p.OnReady(secondsToDuration(readyAt))
		}
	}
}
