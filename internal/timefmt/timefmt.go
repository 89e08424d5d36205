// Package timefmt renders playback times for the on-screen controls.
package timefmt

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats millisecond durations as "H:MM:SS" or "MM:SS" using the
// digits of its locale.
type Formatter struct {
	p *message.Printer
}

// New creates a Formatter for the given locale.
func New(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Format formats d, rounded to the nearest second.
func (f *Formatter) Format(d time.Duration) string {
	return f.FormatMillis(d.Milliseconds())
}

// FormatMillis formats a millisecond count, rounded to the nearest second.
// Negative values keep their sign.
func (f *Formatter) FormatMillis(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	total := (ms + 500) / 1000
	seconds := total % 60
	minutes := total / 60 % 60
	hours := total / 3600
	if hours > 0 {
		// Hours are never grouped: 1000 hours is "1000:00:00" in every locale.
		return f.p.Sprintf("%s%v:%02d:%02d", sign, number.Decimal(hours, number.NoSeparator()), minutes, seconds)
	}
	return f.p.Sprintf("%s%02d:%02d", sign, minutes, seconds)
}
