package controls

import (
	"image/color"
	"time"

	"golang.org/x/text/language"
)

// Config holds construction-time settings of the controls.
type Config struct {
	SeekBarColor color.RGBA
	ThumbColor   color.RGBA
	AutoHide     bool
	HideTimeout  time.Duration
	Locale       language.Tag
	// InitiallyVisible starts the overlay shown, so it auto-hides after the
	// first attach.
	InitiallyVisible bool
}

// DefaultConfig returns white bars, auto-hide after three seconds.
func DefaultConfig() Config {
	return Config{
		SeekBarColor:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		ThumbColor:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		AutoHide:         true,
		HideTimeout:      3 * time.Second,
		Locale:           language.English,
		InitiallyVisible: true,
	}
}
