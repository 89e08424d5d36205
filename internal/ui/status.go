package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatusScreen is drawn by ebiten before mpv takes over the window, and when
// playback could not start.
type StatusScreen struct {
	Title string
	Err   error
	frame int
}

// Update advances the spinner by one frame.
func (s *StatusScreen) Update() {
	s.frame++
}

func (s *StatusScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	cx, cy := float64(ScreenWidth)/2, float64(ScreenHeight)/2

	if s.Title != "" {
		DrawTextCentered(dst, s.Title, cx, cy-90, FontSizeTitle, ColorText)
	}

	if s.Err != nil {
		DrawTextWrappedCentered(dst, s.Err.Error(), cx, cy-10, errorTextWidth, FontSizeBody, ColorError)
		DrawTextCentered(dst, "Press Back to exit", cx, cy+80, FontSizeSmall, ColorTextSecondary)
		return
	}

	s.drawSpinner(dst, cx, cy)
}

func (s *StatusScreen) drawSpinner(dst *ebiten.Image, cx, cy float64) {
	head := (s.frame * spinnerDots / spinnerPeriod) % spinnerDots
	for i := range spinnerDots {
		angle := 2 * math.Pi * float64(i) / spinnerDots
		x := cx + spinnerRadius*math.Cos(angle)
		y := cy + spinnerRadius*math.Sin(angle)
		vector.DrawFilledCircle(dst, float32(x), float32(y), 4, spinnerColor(i, head), true)
	}
}

// spinnerColor fades the dots trailing the head dot.
func spinnerColor(i, head int) color.RGBA {
	age := (head - i + spinnerDots) % spinnerDots
	a := uint8(255 - age*255/spinnerDots)
	c := ColorPrimary
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
