// Package controls implements the on-screen playback controls: visibility,
// auto-hide, progress polling and remote-control key routing.
//
// A Controller is not safe for concurrent use. Every method, listener call and
// scheduled task runs on the goroutine that drives its looper.
package controls

import (
	"errors"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/looper"
	"github.com/depeter/couchcontrols/internal/timefmt"
)

// State is the media state of the controls.
type State int

const (
	// StateLoading means the duration is unknown and progress is not polled.
	StateLoading State = iota
	// StateReady means the duration is known and progress is polled.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	}
	return "Unknown"
}

const (
	// SeekBarMax is the seek bar position once nothing remains.
	SeekBarMax = 100

	fadeDuration    = 300 * time.Millisecond
	pulseDuration   = 300 * time.Millisecond
	pulseScale      = 1.5
	refreshInterval = 50 * time.Millisecond
)

// ErrInvalidDuration is returned by Load for a non-positive duration.
var ErrInvalidDuration = errors.New("controls: duration must be positive")

// Controller owns the overlay state machine.
type Controller struct {
	view     View
	animator Animator
	loop     *looper.Looper
	fmt      *timefmt.Formatter
	log      *zap.Logger

	events   EventListener
	progress ProgressListener

	cfg      Config
	autoHide bool

	state    State
	duration time.Duration

	visible  bool
	attached bool
	released bool

	hideAt      time.Time
	hideTask    *looper.Task
	refreshTask *looper.Task
	// refreshOnAttach resumes polling for a Load that happened while detached.
	refreshOnAttach bool

	seekPos          int
	progressText     string
	indicatorEnabled bool
}

// New creates a detached controller in StateLoading.
func New(cfg Config, view View, animator Animator, loop *looper.Looper, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		view:     view,
		animator: animator,
		loop:     loop,
		fmt:      timefmt.New(cfg.Locale),
		log:      logger,
		cfg:      cfg,
		autoHide: cfg.AutoHide,
		state:    StateLoading,
		visible:  cfg.InitiallyVisible,
	}
	view.SetSeekBarColors(cfg.SeekBarColor, cfg.ThumbColor)
	view.SetSeekBarPosition(c.seekPos)
	view.SetVisible(TargetOverlay, c.visible)
	view.SetProperty(TargetOverlay, PropertyAlpha, lo.Ternary(c.visible, 1.0, 0.0))
	return c
}

// SetEventListener sets the receiver of playback intents. Nil disables them.
func (c *Controller) SetEventListener(l EventListener) { c.events = l }

// SetProgressListener sets the source of remaining time. Nil reads as zero.
func (c *Controller) SetProgressListener(l ProgressListener) { c.progress = l }

// SetAutoHide enables or disables the auto-hide timer for later arms.
func (c *Controller) SetAutoHide(enabled bool) { c.autoHide = enabled }

func (c *Controller) AutoHide() bool          { return c.autoHide }
func (c *Controller) State() State            { return c.state }
func (c *Controller) Duration() time.Duration { return c.duration }
func (c *Controller) Visible() bool           { return c.visible }
func (c *Controller) Attached() bool          { return c.attached }
func (c *Controller) SeekBarPosition() int    { return c.seekPos }
func (c *Controller) ProgressText() string    { return c.progressText }
func (c *Controller) IndicatorEnabled() bool  { return c.indicatorEnabled }

// HideDeadline returns when the overlay is due to auto-hide.
func (c *Controller) HideDeadline() (time.Time, bool) {
	return c.hideAt, !c.hideAt.IsZero()
}

// Load records the media duration, enters StateReady and refreshes progress.
func (c *Controller) Load(duration time.Duration) error {
	if c.released {
		return nil
	}
	if duration <= 0 {
		c.log.Warn("rejecting media duration", zap.Duration("duration", duration))
		return ErrInvalidDuration
	}
	c.duration = duration
	c.state = StateReady
	c.log.Debug("media loaded", zap.Duration("duration", duration))
	c.refreshProgress()
	return nil
}

// Show fades the overlay in when hidden and restarts the auto-hide timer.
func (c *Controller) Show() {
	if c.released {
		return
	}
	c.view.RequestSeekBarFocus()
	if !c.visible {
		c.visible = true
		c.animator.Animate(Transition{
			Name:     "show",
			Target:   TargetOverlay,
			Tweens:   []Tween{{Property: PropertyAlpha, To: 1}},
			Duration: fadeDuration,
			Easing:   EaseDecelerate,
			OnBegin: func() {
				c.view.SetVisible(TargetOverlay, true)
				c.view.SetProperty(TargetOverlay, PropertyAlpha, 0)
			},
			OnEnd:    c.settleShown,
			OnCancel: c.settleShown,
		})
	}
	c.scheduleHide()
}

// Hide fades the overlay out when shown and cancels the auto-hide timer.
func (c *Controller) Hide() {
	if c.released {
		return
	}
	if c.visible {
		c.visible = false
		c.animator.Animate(Transition{
			Name:     "hide",
			Target:   TargetOverlay,
			Tweens:   []Tween{{Property: PropertyAlpha, To: 0}},
			Duration: fadeDuration,
			Easing:   EaseAccelerate,
			OnBegin: func() {
				c.view.SetVisible(TargetOverlay, true)
				c.view.SetProperty(TargetOverlay, PropertyAlpha, 1)
			},
			OnEnd:    c.settleHidden,
			OnCancel: c.settleHidden,
		})
	}
	c.cancelHide()
}

func (c *Controller) settleShown() {
	c.view.SetVisible(TargetOverlay, true)
	c.view.SetProperty(TargetOverlay, PropertyAlpha, 1)
}

func (c *Controller) settleHidden() {
	c.view.SetVisible(TargetOverlay, false)
	c.view.SetProperty(TargetOverlay, PropertyAlpha, 0)
}

// OnAttached resumes the auto-hide timer after the surface is (re)attached.
func (c *Controller) OnAttached() {
	if c.released || c.attached {
		return
	}
	c.attached = true
	if !c.hideAt.IsZero() {
		delay := c.hideAt.Sub(c.loop.Now())
		if delay <= 0 {
			c.Hide()
		} else {
			c.postHide(delay)
		}
	} else if c.visible {
		c.scheduleHide()
	}
	if c.refreshOnAttach {
		c.refreshOnAttach = false
		c.refreshProgress()
	}
}

// OnDetached stops progress polling and parks the auto-hide timer. The hide
// deadline is kept so OnAttached can honor it.
func (c *Controller) OnDetached() {
	if c.released || !c.attached {
		return
	}
	c.attached = false
	c.loop.Remove(c.refreshTask)
	c.refreshTask = nil
	c.loop.Remove(c.hideTask)
	c.hideTask = nil
}

// Release cancels all scheduled work. The controller ignores every call
// afterwards.
func (c *Controller) Release() {
	if c.released {
		return
	}
	c.OnDetached()
	c.released = true
	c.refreshOnAttach = false
	c.hideAt = time.Time{}
}

func (c *Controller) refreshProgress() {
	if c.released || c.state != StateReady {
		return
	}
	if !c.attached {
		c.refreshOnAttach = true
		return
	}
	remaining := time.Duration(0)
	if c.progress != nil {
		remaining = c.progress.Progress()
	}
	c.progressText = c.fmt.Format(remaining)
	c.seekPos = seekBarPosition(remaining, c.duration)
	c.view.SetProgressText(c.progressText)
	c.view.SetSeekBarPosition(c.seekPos)

	c.loop.Remove(c.refreshTask)
	c.refreshTask = c.loop.PostDelayed(c.refreshProgress, refreshInterval)
}

func (c *Controller) scheduleHide() {
	if !c.autoHide {
		return
	}
	c.loop.Remove(c.hideTask)
	c.hideTask = nil
	c.hideAt = c.loop.Now().Add(c.cfg.HideTimeout)
	if c.attached {
		c.postHide(c.cfg.HideTimeout)
	}
}

func (c *Controller) postHide(delay time.Duration) {
	c.loop.Remove(c.hideTask)
	c.hideTask = c.loop.PostDelayed(func() {
		c.hideTask = nil
		if c.released {
			return
		}
		c.Hide()
	}, delay)
}

func (c *Controller) cancelHide() {
	c.loop.Remove(c.hideTask)
	c.hideTask = nil
	c.hideAt = time.Time{}
}

// seekBarPosition maps remaining time onto [0, SeekBarMax]: 0 while all of the
// media remains, SeekBarMax once nothing does.
func seekBarPosition(remaining, duration time.Duration) int {
	if duration <= 0 {
		return 0
	}
	d := duration.Milliseconds()
	if d <= 0 {
		d = 1
	}
	r := lo.Clamp(remaining.Milliseconds(), 0, d)
	return lo.Clamp(SeekBarMax-int(r*SeekBarMax/d), 0, SeekBarMax)
}
