package controls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/depeter/couchcontrols/internal/controls/mocks"
)

func newKeyHarness(t *testing.T) (*harness, *mocks.MockEventListener) {
	t.Helper()
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventListener(ctrl)
	h := newHarness(t, nil)
	h.ctrl.SetEventListener(events)
	h.ctrl.OnAttached()
	return h, events
}

func TestOnKeyEvent_DownCancelsAndUpRearmsHide(t *testing.T) {
	h, _ := newKeyHarness(t)
	h.ctrl.Show()

	assert.False(t, h.ctrl.OnKeyEvent(Down(KeyDpadUp)))
	_, ok := h.ctrl.HideDeadline()
	assert.False(t, ok)
	assert.Equal(t, 0, h.loop.Pending())

	h.advance(5 * time.Second)
	assert.True(t, h.ctrl.Visible(), "held key keeps the overlay up")

	h.ctrl.OnKeyEvent(Up(KeyDpadUp))
	deadline, ok := h.ctrl.HideDeadline()
	require.True(t, ok)
	assert.Equal(t, h.clk.Now().Add(3*time.Second), deadline)
	assert.Equal(t, 1, h.loop.Pending())
}

func TestOnKeyEvent_RepeatedDownsDoNotDoubleSchedule(t *testing.T) {
	h, _ := newKeyHarness(t)
	h.ctrl.Show()

	h.ctrl.OnKeyEvent(Down(KeyDpadUp))
	h.ctrl.OnKeyEvent(Down(KeyDpadUp))
	assert.Equal(t, 0, h.loop.Pending())

	h.ctrl.OnKeyEvent(Up(KeyDpadUp))
	h.ctrl.OnKeyEvent(Up(KeyDpadUp))
	assert.Equal(t, 1, h.loop.Pending())

	h.advance(3100 * time.Millisecond)
	assert.False(t, h.ctrl.Visible())
	assert.Equal(t, 1, h.animator.count("hide"))
}

func TestOnKeyEvent_UpWhileHiddenLeavesTimerOff(t *testing.T) {
	h, _ := newKeyHarness(t)

	h.ctrl.OnKeyEvent(Up(KeyDpadUp))

	_, ok := h.ctrl.HideDeadline()
	assert.False(t, ok)
	assert.Equal(t, 0, h.loop.Pending())
}

func TestOnKeyEvent_OtherActionsPassThrough(t *testing.T) {
	h, _ := newKeyHarness(t)
	h.ctrl.Show()
	before, _ := h.ctrl.HideDeadline()

	handled := h.ctrl.OnKeyEvent(KeyEvent{Code: KeyMediaPlayPause, Action: ActionMultiple})

	assert.False(t, handled)
	after, ok := h.ctrl.HideDeadline()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestOnKeyEvent_PlayPauseTogglesIndicator(t *testing.T) {
	h, events := newKeyHarness(t)
	gomock.InOrder(
		events.EXPECT().PlayPause().Return(true),
		events.EXPECT().PlayPause().Return(false),
	)

	require.True(t, h.ctrl.OnKeyEvent(Down(KeyMediaPlayPause)))
	assert.True(t, h.ctrl.IndicatorEnabled())
	assert.True(t, h.view.indicatorEnabled)

	require.True(t, h.ctrl.OnKeyEvent(Down(KeyHeadsetHook)))
	assert.False(t, h.ctrl.IndicatorEnabled())
	assert.False(t, h.view.indicatorEnabled)

	assert.Equal(t, 2, h.animator.count("pulse"))
}

func TestOnKeyEvent_PlayAndPause(t *testing.T) {
	h, events := newKeyHarness(t)
	events.EXPECT().Play().Return(true)
	events.EXPECT().Pause().Return(true)

	require.True(t, h.ctrl.OnKeyEvent(Down(KeyMediaPlay)))
	assert.True(t, h.ctrl.IndicatorEnabled())

	require.True(t, h.ctrl.OnKeyEvent(Down(KeyMediaPause)))
	assert.False(t, h.ctrl.IndicatorEnabled())
}

func TestOnKeyEvent_FailedIntentsReportOpposite(t *testing.T) {
	h, events := newKeyHarness(t)
	events.EXPECT().Play().Return(false)
	events.EXPECT().Pause().Return(false)

	h.ctrl.OnKeyEvent(Down(KeyMediaPlay))
	assert.False(t, h.ctrl.IndicatorEnabled())

	h.ctrl.OnKeyEvent(Down(KeyMediaPause))
	assert.True(t, h.ctrl.IndicatorEnabled())
}

func TestOnKeyEvent_PulseResetsIndicator(t *testing.T) {
	h, events := newKeyHarness(t)
	events.EXPECT().PlayPause().Return(true)

	h.ctrl.OnKeyEvent(Down(KeyMediaPlayPause))

	assert.False(t, h.view.visible[TargetIndicator])
	assert.InDelta(t, 1.0, h.view.prop(TargetIndicator, PropertyScale), 1e-9)
	assert.InDelta(t, 1.0, h.view.prop(TargetIndicator, PropertyAlpha), 1e-9)

	pulse := h.animator.started[len(h.animator.started)-1]
	assert.Equal(t, TargetIndicator, pulse.Target)
	assert.ElementsMatch(t, []Tween{
		{Property: PropertyScale, To: 1.5},
		{Property: PropertyAlpha, To: 0},
	}, pulse.Tweens)
}

func TestOnKeyEvent_RepeatsOnlyTriggerOnFirstPress(t *testing.T) {
	h, events := newKeyHarness(t)
	events.EXPECT().PlayPause().Return(true).Times(1)

	h.ctrl.OnKeyEvent(Down(KeyMediaPlayPause))
	h.ctrl.OnKeyEvent(Repeat(KeyMediaPlayPause, 1))
	h.ctrl.OnKeyEvent(Repeat(KeyMediaPlayPause, 2))
}

func TestOnKeyEvent_SeekKeys(t *testing.T) {
	tests := []struct {
		name    string
		ev      KeyEvent
		expect  func(*mocks.MockEventListener)
		handled bool
	}{
		{
			name:    "rewind press skips back",
			ev:      Down(KeyMediaRewind),
			expect:  func(m *mocks.MockEventListener) { m.EXPECT().SkipBack() },
			handled: true,
		},
		{
			name:    "held rewind skips back",
			ev:      Repeat(KeyMediaRewind, 3),
			expect:  func(m *mocks.MockEventListener) { m.EXPECT().SkipBack() },
			handled: true,
		},
		{
			name:    "held fast forward skips forward",
			ev:      Repeat(KeyMediaFastForward, 1),
			expect:  func(m *mocks.MockEventListener) { m.EXPECT().SkipForward() },
			handled: true,
		},
		{
			name:    "first fast forward press is not handled",
			ev:      Down(KeyMediaFastForward),
			expect:  func(*mocks.MockEventListener) {},
			handled: false,
		},
		{
			name:    "release is not handled",
			ev:      Up(KeyMediaRewind),
			expect:  func(*mocks.MockEventListener) {},
			handled: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, events := newKeyHarness(t)
			tt.expect(events)
			assert.Equal(t, tt.handled, h.ctrl.OnKeyEvent(tt.ev))
		})
	}
}

func TestOnKeyEvent_DpadDownHidesFocusedOverlay(t *testing.T) {
	h, _ := newKeyHarness(t)
	h.ctrl.Show()
	require.True(t, h.view.SeekBarFocused())

	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyDpadDown)))
	assert.False(t, h.ctrl.Visible())

	// Already hidden: the key propagates.
	assert.False(t, h.ctrl.OnKeyEvent(Down(KeyDpadDown)))
}

func TestOnKeyEvent_DpadDownWithoutFocusPropagates(t *testing.T) {
	h, _ := newKeyHarness(t)
	h.ctrl.Show()
	h.view.focused = false

	assert.False(t, h.ctrl.OnKeyEvent(Down(KeyDpadDown)))
	assert.True(t, h.ctrl.Visible())
}

func TestOnKeyEvent_SeekBarArrows(t *testing.T) {
	h, events := newKeyHarness(t)
	h.ctrl.Show()
	events.EXPECT().SkipBack().Times(2)
	events.EXPECT().SkipForward()

	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyDpadLeft)))
	assert.True(t, h.ctrl.OnKeyEvent(Repeat(KeyDpadLeft, 1)))
	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyDpadRight)))
	assert.False(t, h.ctrl.OnKeyEvent(Up(KeyDpadRight)))
}

func TestOnKeyEvent_SeekBarArrowsIgnoredWithoutFocus(t *testing.T) {
	h, _ := newKeyHarness(t)

	assert.False(t, h.ctrl.OnKeyEvent(Down(KeyDpadLeft)))
	assert.False(t, h.ctrl.OnKeyEvent(Down(KeyDpadRight)))
}

func TestOnKeyEvent_SeekBarClickTogglesPlayback(t *testing.T) {
	h, events := newKeyHarness(t)
	h.ctrl.Show()
	events.EXPECT().PlayPause().Return(false)

	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyDpadCenter)))
	assert.True(t, h.ctrl.OnKeyEvent(Up(KeyDpadCenter)))
	assert.False(t, h.ctrl.IndicatorEnabled())
	assert.Equal(t, 1, h.animator.count("pulse"))
}

func TestOnKeyEvent_NilListener(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.OnAttached()
	h.ctrl.Show()

	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyMediaPlayPause)))
	assert.False(t, h.ctrl.IndicatorEnabled())
	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyMediaPause)))
	assert.True(t, h.ctrl.IndicatorEnabled())
	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyMediaRewind)))
	assert.True(t, h.ctrl.OnKeyEvent(Down(KeyDpadRight)))
}

func TestKeyCode_String(t *testing.T) {
	for code := KeyUnknown; code <= KeyMediaStop; code++ {
		assert.NotContains(t, code.String(), "key(", "missing name for %d", int(code))
	}
	assert.Equal(t, "key(99)", KeyCode(99).String())
}
