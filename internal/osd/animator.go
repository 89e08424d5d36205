package osd

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/controls"
)

type running struct {
	tr    controls.Transition
	from  []float64
	start time.Time
}

// Animator interpolates transitions on every Update. It implements
// controls.Animator and keeps at most one transition per target.
type Animator struct {
	sink   PropertySink
	clock  clockwork.Clock
	log    *zap.Logger
	active map[controls.Target]*running
}

// NewAnimator creates an Animator writing to sink.
func NewAnimator(sink PropertySink, clock clockwork.Clock, logger *zap.Logger) *Animator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Animator{
		sink:   sink,
		clock:  clock,
		log:    logger,
		active: make(map[controls.Target]*running),
	}
}

// Animate starts t, cancelling the transition already running on its target.
// Start values are read after OnBegin so the hook can reset them.
func (a *Animator) Animate(t controls.Transition) {
	if prev, ok := a.active[t.Target]; ok {
		delete(a.active, t.Target)
		a.log.Debug("transition cancelled", zap.String("name", prev.tr.Name))
		if prev.tr.OnCancel != nil {
			prev.tr.OnCancel()
		}
	}
	if t.OnBegin != nil {
		t.OnBegin()
	}
	r := &running{tr: t, start: a.clock.Now(), from: make([]float64, len(t.Tweens))}
	for i, tw := range t.Tweens {
		r.from[i] = a.sink.Property(t.Target, tw.Property)
	}
	a.active[t.Target] = r
	if t.Duration <= 0 {
		a.finish(r)
	}
}

// Update advances every running transition to the current time.
func (a *Animator) Update() {
	now := a.clock.Now()
	for _, r := range a.active {
		elapsed := now.Sub(r.start)
		if elapsed >= r.tr.Duration {
			a.finish(r)
			continue
		}
		f := ease(r.tr.Easing, float64(elapsed)/float64(r.tr.Duration))
		for i, tw := range r.tr.Tweens {
			a.sink.SetProperty(r.tr.Target, tw.Property, r.from[i]+(tw.To-r.from[i])*f)
		}
	}
}

func (a *Animator) finish(r *running) {
	if a.active[r.tr.Target] != r {
		return
	}
	delete(a.active, r.tr.Target)
	for _, tw := range r.tr.Tweens {
		a.sink.SetProperty(r.tr.Target, tw.Property, tw.To)
	}
	if r.tr.OnEnd != nil {
		r.tr.OnEnd()
	}
}

// Running reports whether a transition is active on target.
func (a *Animator) Running(target controls.Target) bool {
	_, ok := a.active[target]
	return ok
}

// CancelAll cancels every running transition.
func (a *Animator) CancelAll() {
	for target, r := range a.active {
		delete(a.active, target)
		if r.tr.OnCancel != nil {
			r.tr.OnCancel()
		}
	}
}

// ease maps linear progress p in [0,1] onto the easing curve.
func ease(e controls.Easing, p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	switch e {
	case controls.EaseDecelerate:
		return cubicBezier(0, 0, 0.2, 1, p)
	case controls.EaseAccelerate:
		return cubicBezier(0.4, 0, 1, 1, p)
	}
	return p
}

// cubicBezier evaluates the CSS-style easing curve through (0,0), (x1,y1),
// (x2,y2), (1,1) at horizontal position x.
func cubicBezier(x1, y1, x2, y2, x float64) float64 {
	sample := func(a1, a2, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a1 + 3*u*t*t*a2 + t*t*t
	}
	lo, hi := 0.0, 1.0
	t := x
	for range 24 {
		t = (lo + hi) / 2
		if sample(x1, x2, t) < x {
			lo = t
		} else {
			hi = t
		}
	}
	return sample(y1, y2, t)
}
