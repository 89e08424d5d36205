package osd

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/samber/lo"

	"github.com/depeter/couchcontrols/internal/controls"
)

// ASS PlayRes the events are laid out in. mpv scales it to the window.
const (
	CanvasWidth  = 1920
	CanvasHeight = 1080
)

// ASS colors are &HBBGGRR&, alpha is &HAA& with 00 opaque.
const (
	assWhite  = "&HFFFFFF&"
	assBlack  = "&H000000&"
	assShadow = "&H000000&"
	fontText  = "Segoe UI,Liberation Sans,sans-serif"
	fontIcon  = "Segoe UI Symbol,Noto Sans Symbols2,sans-serif"
)

const (
	barX = 200
	barW = 1520
	barY = 975
	barH = 6
	barR = 3

	thumbR        = 10
	thumbFocusedR = 14
)

// Render returns the ASS events for the current view state, or "" when
// nothing is on screen.
func Render(v *View) string {
	var b strings.Builder

	surface := v.el(controls.TargetSurface)
	if !surface.visible {
		renderLoading(&b, v.title)
		return b.String()
	}
	if surface.alpha < 1 {
		// Surface fades in from black.
		fmt.Fprintf(&b,
			"{\\an7\\pos(0,0)\\p1\\bord0\\shad0\\1c%s\\1a%s}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
			assBlack, assAlpha(1-surface.alpha), CanvasWidth, CanvasWidth, CanvasHeight, CanvasHeight,
		)
	}

	if overlay := v.el(controls.TargetOverlay); overlay.visible && overlay.alpha > 0 {
		renderBar(&b, v, overlay.alpha)
	}

	if ind := v.el(controls.TargetIndicator); ind.visible && ind.alpha > 0 {
		renderIndicator(&b, v.indicatorEnabled, ind.alpha, ind.scale)
	}

	return b.String()
}

func renderLoading(b *strings.Builder, title string) {
	fmt.Fprintf(b,
		"{\\an7\\pos(0,0)\\p1\\bord0\\shad0\\1c%s}m 0 0 l %d 0 l %d %d l 0 %d{\\p0}\n",
		assBlack, CanvasWidth, CanvasWidth, CanvasHeight, CanvasHeight,
	)
	label := "Loading…"
	if title != "" {
		label = escapeASS(title) + "\\N{\\fs28\\1a&H60&}Loading…"
	}
	fmt.Fprintf(b,
		"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs42\\1c%s\\fn%s}%s{\\r}\n",
		CanvasWidth/2, CanvasHeight/2, assShadow, assWhite, fontText, label,
	)
}

func renderBar(b *strings.Builder, v *View, alpha float64) {
	pct := float64(lo.Clamp(v.seekPos, 0, controls.SeekBarMax)) / controls.SeekBarMax

	// Backdrop
	fmt.Fprintf(b,
		"{\\an5\\pos(%d,1010)\\p1\\bord0\\shad0\\1c%s\\1a%s}m 0 0 l %d 0 l %d 140 l 0 140{\\p0}\n",
		CanvasWidth/2, assBlack, assAlpha(0.75*alpha), CanvasWidth, CanvasWidth,
	)

	if v.title != "" {
		fmt.Fprintf(b,
			"{\\an1\\pos(%d,945)\\bord0\\shad1\\3c%s\\fs34\\1c%s\\1a%s\\fn%s\\b1}%s{\\r}\n",
			barX, assShadow, assWhite, assAlpha(alpha), fontText, escapeASS(v.title),
		)
	}

	// Track
	fmt.Fprintf(b,
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a%s}%s{\\p0}\n",
		barX, barY-barH/2, assWhite, assAlpha(0.5*alpha), assRoundRect(0, 0, barW, barH, barR),
	)

	fillW := int(float64(barW) * pct)
	if fillW > 0 {
		fillW = max(fillW, barR*2)
		fmt.Fprintf(b,
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s\\1a%s}%s{\\p0}\n",
			barX, barY-barH/2, assColor(v.barColor), assAlpha(alpha*colorOpacity(v.barColor)),
			assRoundRect(0, 0, fillW, barH, barR),
		)
	}

	r := lo.Ternary(v.focused, thumbFocusedR, thumbR)
	fmt.Fprintf(b,
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad2\\3c%s\\1c%s\\1a%s}%s{\\p0}\n",
		barX+int(float64(barW)*pct), barY, assShadow, assColor(v.thumbColor),
		assAlpha(alpha*colorOpacity(v.thumbColor)), assCircle(0, 0, r),
	)

	if v.progressText != "" {
		fmt.Fprintf(b,
			"{\\an6\\pos(%d,1003)\\bord0\\shad1\\3c%s\\fs28\\1c%s\\1a%s\\fn%s\\b1}%s{\\r}\n",
			CanvasWidth-60, assShadow, assWhite, assAlpha(alpha), fontText, v.progressText,
		)
	}
}

func renderIndicator(b *strings.Builder, playing bool, alpha, scale float64) {
	icon := lo.Ternary(playing, "▶", "❚❚")
	fmt.Fprintf(b,
		"{\\an5\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs96\\fscx%d\\fscy%d\\1c%s\\1a%s\\fn%s}%s{\\r}\n",
		CanvasWidth/2, CanvasHeight/2, assShadow, int(100*scale), int(100*scale),
		assWhite, assAlpha(alpha), fontIcon, icon,
	)
}

// assAlpha converts an opacity in [0,1] into an ASS alpha override.
func assAlpha(opacity float64) string {
	o := lo.Clamp(opacity, 0, 1)
	return fmt.Sprintf("&H%02X&", 255-int(o*255+0.5))
}

// assColor converts c into ASS BGR order.
func assColor(c color.RGBA) string {
	return fmt.Sprintf("&H%02X%02X%02X&", c.B, c.G, c.R)
}

func colorOpacity(c color.RGBA) float64 {
	return float64(c.A) / 255
}

// escapeASS keeps user text from opening override blocks or forming escapes
// such as \n. A backslash is followed by a zero-width space, as mpv does.
func escapeASS(s string) string {
	return strings.NewReplacer("\\", "\\\u200b", "{", "\\{", "}", "\\}", "\n", " ").Replace(s)
}

// assRoundRect draws a rounded rectangle relative to the \pos anchor.
func assRoundRect(x, y, w, h, r int) string {
	r = min(r, h/2, w/2)
	return fmt.Sprintf(
		"m %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d l %d %d b %d %d %d %d %d %d",
		x+r, y,
		x+w-r, y,
		x+w, y, x+w, y, x+w, y+r,
		x+w, y+h-r,
		x+w, y+h, x+w, y+h, x+w-r, y+h,
		x+r, y+h,
		x, y+h, x, y+h, x, y+h-r,
		x, y+r,
		x, y, x, y, x+r, y,
	)
}

// assCircle approximates a circle with four cubic segments.
func assCircle(cx, cy, r int) string {
	k := r * 55 / 100
	return fmt.Sprintf(
		"m %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d b %d %d %d %d %d %d",
		cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
	)
}

// DebugOverlayID is the overlay slot of the input debug panel.
const DebugOverlayID = 2

// RenderDebug draws lines as a panel in the top-right corner.
func RenderDebug(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	const (
		lineH  = 26
		panelW = 640
		pad    = 16
	)
	var b strings.Builder
	panelH := len(lines)*lineH + 2*pad
	x := CanvasWidth - panelW - 20
	fmt.Fprintf(&b,
		"{\\an7\\pos(%d,20)\\p1\\bord0\\shad0\\1c%s\\1a&H40&}%s{\\p0}\n",
		x, assBlack, assRoundRect(0, 0, panelW, panelH, 8),
	)
	for i, line := range lines {
		fmt.Fprintf(&b,
			"{\\an7\\pos(%d,%d)\\bord0\\shad0\\fs20\\1c%s\\fnDejaVu Sans Mono,monospace}%s{\\r}\n",
			x+pad, 20+pad+i*lineH, assWhite, escapeASS(line),
		)
	}
	return b.String()
}
