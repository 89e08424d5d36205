package controls

import "go.uber.org/zap"

// OnKeyEvent routes a key event and reports whether it was consumed. Every
// press parks the auto-hide timer and every release restarts it, so the
// overlay stays up while a key is held.
func (c *Controller) OnKeyEvent(ev KeyEvent) bool {
	if c.released {
		return false
	}
	switch ev.Action {
	case ActionDown:
		c.cancelHide()
	case ActionUp:
		if c.visible {
			c.scheduleHide()
		}
	}

	if ev.Action == ActionDown {
		if ev.RepeatCount == 0 {
			switch ev.Code {
			case KeyMediaPlayPause, KeyHeadsetHook:
				c.broadcastPlayPause()
				return true
			case KeyMediaPlay:
				c.broadcastPlay()
				return true
			case KeyMediaPause:
				c.broadcastPause()
				return true
			case KeyMediaRewind:
				c.skipBack()
				return true
			case KeyDpadDown:
				if c.visible && c.view.SeekBarFocused() {
					c.Hide()
					return true
				}
				return false
			}
		} else {
			switch ev.Code {
			case KeyMediaFastForward:
				c.skipForward()
				return true
			case KeyMediaRewind:
				c.skipBack()
				return true
			}
		}
	}
	return c.dispatchToSeekBar(ev)
}

// dispatchToSeekBar handles keys aimed at the focused seek bar: left and right
// skip, center and enter toggle playback on release.
func (c *Controller) dispatchToSeekBar(ev KeyEvent) bool {
	if !c.view.SeekBarFocused() {
		return false
	}
	switch ev.Action {
	case ActionDown:
		switch ev.Code {
		case KeyDpadLeft:
			c.skipBack()
			return true
		case KeyDpadRight:
			c.skipForward()
			return true
		case KeyDpadCenter, KeyEnter:
			return true
		}
	case ActionUp:
		switch ev.Code {
		case KeyDpadCenter, KeyEnter:
			c.broadcastPlayPause()
			return true
		}
	}
	c.log.Debug("key not handled", zap.Stringer("event", ev))
	return false
}

func (c *Controller) skipForward() {
	if c.events != nil {
		c.events.SkipForward()
	}
}

func (c *Controller) skipBack() {
	if c.events != nil {
		c.events.SkipBack()
	}
}

func (c *Controller) broadcastPlayPause() {
	playing := c.events != nil && c.events.PlayPause()
	c.showIndicator(playing)
}

func (c *Controller) broadcastPlay() {
	playing := c.events != nil && c.events.Play()
	c.showIndicator(playing)
}

func (c *Controller) broadcastPause() {
	paused := c.events != nil && c.events.Pause()
	c.showIndicator(!paused)
}

// showIndicator records the resulting playing state and pulses the indicator.
func (c *Controller) showIndicator(playing bool) {
	c.indicatorEnabled = playing
	c.view.SetIndicatorEnabled(playing)
	reset := func() {
		c.view.SetVisible(TargetIndicator, false)
		c.view.SetProperty(TargetIndicator, PropertyScale, 1)
		c.view.SetProperty(TargetIndicator, PropertyAlpha, 1)
	}
	c.animator.Animate(Transition{
		Name:   "pulse",
		Target: TargetIndicator,
		Tweens: []Tween{
			{Property: PropertyScale, To: pulseScale},
			{Property: PropertyAlpha, To: 0},
		},
		Duration: pulseDuration,
		Easing:   EaseAccelerate,
		OnBegin: func() {
			c.view.SetVisible(TargetIndicator, true)
		},
		OnEnd:    reset,
		OnCancel: reset,
	})
}
