package controls

import (
	"image/color"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/looper"
)

// fakeView records what the controller pushes to the surface.
type fakeView struct {
	visible          map[Target]bool
	props            map[Target]map[Property]float64
	text             string
	pos              int
	bar, thumb       color.RGBA
	indicatorEnabled bool
	focused          bool
	focusRequests    int
}

func newFakeView() *fakeView {
	return &fakeView{
		visible: make(map[Target]bool),
		props:   make(map[Target]map[Property]float64),
	}
}

func (v *fakeView) SetVisible(t Target, visible bool) { v.visible[t] = visible }

func (v *fakeView) SetProperty(t Target, p Property, val float64) {
	if v.props[t] == nil {
		v.props[t] = make(map[Property]float64)
	}
	v.props[t][p] = val
}

func (v *fakeView) prop(t Target, p Property) float64 { return v.props[t][p] }

func (v *fakeView) SetProgressText(text string)           { v.text = text }
func (v *fakeView) SetSeekBarPosition(pos int)            { v.pos = pos }
func (v *fakeView) SetSeekBarColors(bar, thumb color.RGBA) { v.bar, v.thumb = bar, thumb }
func (v *fakeView) SetIndicatorEnabled(enabled bool)      { v.indicatorEnabled = enabled }
func (v *fakeView) RequestSeekBarFocus()                  { v.focusRequests++; v.focused = true }
func (v *fakeView) SeekBarFocused() bool                  { return v.focused }

// fakeAnimator keeps transitions running until finish is called, unless
// autoFinish is set.
type fakeAnimator struct {
	started    []Transition
	running    map[Target]Transition
	autoFinish bool
}

func newFakeAnimator(autoFinish bool) *fakeAnimator {
	return &fakeAnimator{running: make(map[Target]Transition), autoFinish: autoFinish}
}

func (a *fakeAnimator) Animate(t Transition) {
	if prev, ok := a.running[t.Target]; ok {
		delete(a.running, t.Target)
		if prev.OnCancel != nil {
			prev.OnCancel()
		}
	}
	a.started = append(a.started, t)
	if t.OnBegin != nil {
		t.OnBegin()
	}
	if a.autoFinish {
		if t.OnEnd != nil {
			t.OnEnd()
		}
		return
	}
	a.running[t.Target] = t
}

func (a *fakeAnimator) finish(target Target) {
	t, ok := a.running[target]
	if !ok {
		return
	}
	delete(a.running, target)
	if t.OnEnd != nil {
		t.OnEnd()
	}
}

func (a *fakeAnimator) count(name string) int {
	n := 0
	for _, t := range a.started {
		if t.Name == name {
			n++
		}
	}
	return n
}

// progressFunc adapts a function to ProgressListener.
type progressFunc func() time.Duration

func (f progressFunc) Progress() time.Duration { return f() }

type harness struct {
	clk      *clockwork.FakeClock
	loop     *looper.Looper
	view     *fakeView
	animator *fakeAnimator
	ctrl     *Controller
}

func newHarness(t *testing.T, mutate func(*Config)) *harness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InitiallyVisible = false
	if mutate != nil {
		mutate(&cfg)
	}
	clk := clockwork.NewFakeClock()
	loop := looper.New(clk)
	view := newFakeView()
	animator := newFakeAnimator(true)
	return &harness{
		clk:      clk,
		loop:     loop,
		view:     view,
		animator: animator,
		ctrl:     New(cfg, view, animator, loop, zap.NewNop()),
	}
}

// advance moves time forward in 10ms frames, running due tasks each frame.
func (h *harness) advance(d time.Duration) {
	const frame = 10 * time.Millisecond
	for d > 0 {
		step := min(frame, d)
		h.clk.Advance(step)
		h.loop.RunDue()
		d -= step
	}
}
