package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLines(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	assert.Nil(t, wrapLines("   ", 10, measure))
	assert.Equal(t, []string{"one two", "three"}, wrapLines("one two three", 8, measure))
	assert.Equal(t, []string{"a", "verylongword", "b"}, wrapLines("a verylongword b", 5, measure))
}

func TestSpinnerColor(t *testing.T) {
	head := spinnerColor(3, 3)
	assert.Equal(t, uint8(255), head.A)
	assert.Equal(t, ColorPrimary, head)

	trailing := spinnerColor(2, 3)
	assert.Less(t, trailing.A, head.A)
	// Premultiplied: channels never exceed alpha.
	assert.LessOrEqual(t, trailing.B, trailing.A)
}
