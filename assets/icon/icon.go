package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	accent   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	bezel    = color.RGBA{R: 0x2A, G: 0x2A, B: 0x32, A: 0xFF}
	screenBG = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	track    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x50}
	white    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a TV with a play button and a half-filled seek bar.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Stand
	fillRect(img, int(s*0.44), int(s*0.74), int(s*0.12), int(s*0.10), bezel)
	fillRoundedRect(img, s*0.28, s*0.82, s*0.44, s*0.07, s*0.03, bezel)

	// Bezel and screen
	fillRoundedRect(img, s*0.06, s*0.14, s*0.88, s*0.62, s*0.08, bezel)
	fillRoundedRect(img, s*0.11, s*0.19, s*0.78, s*0.52, s*0.05, screenBG)

	// Play button
	fillTriangle(img,
		s*0.43, s*0.30,
		s*0.43, s*0.54,
		s*0.62, s*0.42,
		white)

	// Seek bar
	barX, barY, barW, barH := s*0.18, s*0.62, s*0.64, math.Max(s*0.035, 1)
	fillRoundedRect(img, barX, barY, barW, barH, barH/2, track)
	fillRoundedRect(img, barX, barY, barW*0.5, barH, barH/2, accent)
	fillCircle(img, barX+barW*0.5, barY+barH/2, barH*1.2, white)

	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	r := image.Rect(x0, y0, x0+w, y0+h).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	r := math.Min(rf, math.Min(wf, hf)/2)
	area := image.Rect(int(xf), int(yf), int(xf+wf)+1, int(yf+hf)+1).Intersect(img.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if px > xf+wf || py > yf+hf {
				continue
			}
			// Distance from the nearest corner centre, zero along the straight edges.
			dx := math.Max(math.Max(xf+r-px, px-(xf+wf-r)), 0)
			dy := math.Max(math.Max(yf+r-py, py-(yf+hf-r)), 0)
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	area := image.Rect(int(cx-r), int(cy-r), int(cx+r)+1, int(cy+r)+1).Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillTriangle fills the triangle (ax,ay) (bx,by) (cx,cy) using edge functions.
func fillTriangle(img *image.RGBA, ax, ay, bx, by, cx, cy float64, c color.Color) {
	minX := math.Min(ax, math.Min(bx, cx))
	maxX := math.Max(ax, math.Max(bx, cx))
	minY := math.Min(ay, math.Min(by, cy))
	maxY := math.Max(ay, math.Max(by, cy))
	area := image.Rect(int(minX), int(minY), int(maxX)+1, int(maxY)+1).Intersect(img.Bounds())

	edge := func(x0, y0, x1, y1, px, py float64) float64 {
		return (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(ax, ay, bx, by, px, py)
			e1 := edge(bx, by, cx, cy, px, py)
			e2 := edge(cx, cy, ax, ay, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r, g, b, a := c.RGBA() // premultiplied
	if a == 0 {
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a
	mix := func(src uint32, d uint8) uint8 {
		return uint8((src + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(r, dst.R),
		G: mix(g, dst.G),
		B: mix(b, dst.B),
		A: 0xFF,
	})
}
