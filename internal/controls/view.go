package controls

import (
	"image/color"
	"time"
)

// Target names an animatable element of the controls surface.
type Target int

const (
	TargetOverlay Target = iota
	TargetIndicator
	// TargetSurface is the video surface behind the overlay. The controller
	// never animates it; hosts use it for their own fade-in.
	TargetSurface
)

func (t Target) String() string {
	switch t {
	case TargetOverlay:
		return "overlay"
	case TargetIndicator:
		return "indicator"
	case TargetSurface:
		return "surface"
	}
	return "unknown"
}

// Property is an animatable numeric property of a Target.
type Property int

const (
	PropertyAlpha Property = iota
	PropertyScale
)

// Easing selects the interpolation curve of a Transition.
type Easing int

const (
	EaseLinear Easing = iota
	// EaseDecelerate starts fast and settles slowly (linear-out-slow-in).
	EaseDecelerate
	// EaseAccelerate starts slowly and leaves fast (fast-out-linear-in).
	EaseAccelerate
)

// Tween moves one property to a final value.
type Tween struct {
	Property Property
	To       float64
}

// Transition describes an animation of a target. Starting a transition on a
// target cancels the one already running there, whose OnCancel runs before
// the new OnBegin.
type Transition struct {
	Name     string
	Target   Target
	Tweens   []Tween
	Duration time.Duration
	Easing   Easing

	OnBegin  func()
	OnEnd    func()
	OnCancel func()
}

// Animator runs transitions.
type Animator interface {
	Animate(t Transition)
}

// View is the rendering surface driven by the Controller.
type View interface {
	SetVisible(target Target, visible bool)
	SetProperty(target Target, p Property, v float64)
	SetProgressText(text string)
	SetSeekBarPosition(pos int)
	SetSeekBarColors(bar, thumb color.RGBA)
	SetIndicatorEnabled(enabled bool)
	RequestSeekBarFocus()
	SeekBarFocused() bool
}
