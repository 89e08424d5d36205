package jellyfin

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := map[string]string{
		"jellyfin.local:8096":        "https://jellyfin.local:8096",
		" http://10.0.0.2:8096/ ":    "http://10.0.0.2:8096",
		"https://media.example.com/": "https://media.example.com",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeURL(in), in)
	}
}

func TestGetStreamURL(t *testing.T) {
	c := NewClient(context.Background(), "http://jf:8096")
	c.SetToken("tok en", "user")

	u, err := url.Parse(c.GetStreamURL("abc/123"))
	require.NoError(t, err)
	assert.Equal(t, "/Videos/abc/123/stream", u.Path)
	assert.Contains(t, u.EscapedPath(), "abc%2F123")
	assert.Equal(t, "tok en", u.Query().Get("api_key"))
	assert.Equal(t, "true", u.Query().Get("Static"))
}

func TestItemTitle(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"movie", Item{Name: "Sintel"}, "Sintel"},
		{"episode", Item{Name: "Pilot", SeriesName: "Show", ParentIndexNumber: 1, IndexNumber: 2}, "Show S01E02 · Pilot"},
		{"special", Item{Name: "Extra", SeriesName: "Show"}, "Show · Extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Title())
		})
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, int64(15*ticksPerSecond), durationToTicks(15*time.Second))
	assert.Equal(t, 1500*time.Millisecond, ticksToDuration(15_000_000))
}
