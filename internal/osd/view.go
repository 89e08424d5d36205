// Package osd draws the playback controls as ASS events for mpv's osd-overlay
// and animates their properties frame by frame.
package osd

import (
	"image/color"

	"github.com/depeter/couchcontrols/internal/controls"
)

// OSD overlay slot used for the controls.
const OverlayID = 1

// OverlaySink receives rendered ASS events. *player.Player satisfies it.
type OverlaySink interface {
	SetOSDOverlay(id int, ass string, resX, resY int) error
	RemoveOSDOverlay(id int) error
}

// PropertySink is the part of a view an Animator writes to.
type PropertySink interface {
	Property(target controls.Target, p controls.Property) float64
	SetProperty(target controls.Target, p controls.Property, v float64)
}

type element struct {
	visible bool
	alpha   float64
	scale   float64
}

// View holds the visual state of the controls. It implements controls.View.
type View struct {
	elements map[controls.Target]*element

	progressText     string
	seekPos          int
	barColor         color.RGBA
	thumbColor       color.RGBA
	indicatorEnabled bool
	focused          bool
	title            string

	dirty bool
	shown bool
}

// NewView creates an empty View.
func NewView() *View {
	v := &View{
		elements: make(map[controls.Target]*element),
		dirty:    true,
	}
	for _, t := range []controls.Target{controls.TargetOverlay, controls.TargetIndicator, controls.TargetSurface} {
		v.elements[t] = &element{alpha: 1, scale: 1}
	}
	return v
}

func (v *View) el(t controls.Target) *element {
	e, ok := v.elements[t]
	if !ok {
		e = &element{alpha: 1, scale: 1}
		v.elements[t] = e
	}
	return e
}

func (v *View) SetVisible(target controls.Target, visible bool) {
	e := v.el(target)
	if e.visible != visible {
		e.visible = visible
		v.dirty = true
	}
}

// Visible reports the visibility of target.
func (v *View) Visible(target controls.Target) bool {
	return v.el(target).visible
}

func (v *View) SetProperty(target controls.Target, p controls.Property, val float64) {
	e := v.el(target)
	switch p {
	case controls.PropertyAlpha:
		if e.alpha != val {
			e.alpha = val
			v.dirty = true
		}
	case controls.PropertyScale:
		if e.scale != val {
			e.scale = val
			v.dirty = true
		}
	}
}

// Property returns the current value of a property.
func (v *View) Property(target controls.Target, p controls.Property) float64 {
	e := v.el(target)
	if p == controls.PropertyScale {
		return e.scale
	}
	return e.alpha
}

func (v *View) SetProgressText(text string) {
	if v.progressText != text {
		v.progressText = text
		v.dirty = true
	}
}

func (v *View) SetSeekBarPosition(pos int) {
	if v.seekPos != pos {
		v.seekPos = pos
		v.dirty = true
	}
}

func (v *View) SetSeekBarColors(bar, thumb color.RGBA) {
	v.barColor = bar
	v.thumbColor = thumb
	v.dirty = true
}

func (v *View) SetIndicatorEnabled(enabled bool) {
	if v.indicatorEnabled != enabled {
		v.indicatorEnabled = enabled
		v.dirty = true
	}
}

func (v *View) RequestSeekBarFocus() {
	if !v.focused {
		v.focused = true
		v.dirty = true
	}
}

// ClearFocus drops seek bar focus, e.g. when the host moves focus elsewhere.
func (v *View) ClearFocus() {
	if v.focused {
		v.focused = false
		v.dirty = true
	}
}

func (v *View) SeekBarFocused() bool { return v.focused }

// SetTitle sets the media title shown above the seek bar.
func (v *View) SetTitle(title string) {
	if v.title != title {
		v.title = title
		v.dirty = true
	}
}

// Dirty reports whether the view changed since the last Flush.
func (v *View) Dirty() bool { return v.dirty }

// Flush pushes the rendered controls to sink when something changed.
func (v *View) Flush(sink OverlaySink) error {
	if !v.dirty {
		return nil
	}
	v.dirty = false
	ass := Render(v)
	if ass == "" {
		if !v.shown {
			return nil
		}
		v.shown = false
		return sink.RemoveOSDOverlay(OverlayID)
	}
	v.shown = true
	return sink.SetOSDOverlay(OverlayID, ass, CanvasWidth, CanvasHeight)
}
