package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

// InitFonts loads ttfData as the UI font. Nil selects Go Regular.
func InitFonts(ttfData []byte) error {
	if ttfData == nil {
		ttfData = goregular.TTF
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), 0)
}

// wrapLines breaks txt into lines no wider than maxWidth according to measure.
// A single word wider than maxWidth gets a line of its own.
func wrapLines(txt string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}

// DrawTextWrappedCentered draws txt wrapped to maxWidth, each line centered on
// cx, starting at y. It returns the height used.
func DrawTextWrappedCentered(dst *ebiten.Image, txt string, cx, y, maxWidth float64, size float64, clr color.Color) float64 {
	lineHeight := size * 1.4
	lines := wrapLines(txt, maxWidth, func(s string) float64 {
		w, _ := MeasureText(s, size)
		return w
	})
	for i, line := range lines {
		DrawTextCentered(dst, line, cx, y+float64(i)*lineHeight+lineHeight/2, size, clr)
	}
	return float64(len(lines)) * lineHeight
}
