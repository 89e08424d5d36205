package ui

import "image/color"

// Colors: dark theme inspired by Jellyfin branding
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF} // Jellyfin blue
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
)

const (
	FontSizeTitle = 28
	FontSizeBody  = 16
	FontSizeSmall = 13

	ScreenWidth  = 1920
	ScreenHeight = 1080

	spinnerRadius  = 28
	spinnerDots    = 12
	spinnerPeriod  = 60 // frames per turn
	errorTextWidth = 1200
)
