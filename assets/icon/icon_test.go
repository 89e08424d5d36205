package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())

	_, _, _, a := imgs[0].At(0, 0).RGBA()
	assert.Zero(t, a, "corner should stay transparent")
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 0xFF})

	blendPixel(img, 0, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})
	got := img.RGBAAt(0, 0)
	assert.InDelta(t, 0x80, int(got.R), 1)
	assert.Equal(t, uint8(0xFF), got.A)

	blendPixel(img, 0, 0, color.RGBA{})
	assert.Equal(t, got, img.RGBAAt(0, 0))
}

func TestFillTriangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	fillTriangle(img, 0, 0, 0, 10, 10, 5, white)

	assert.Equal(t, white, img.RGBAAt(1, 5))
	assert.Zero(t, img.RGBAAt(9, 0).A)
}
