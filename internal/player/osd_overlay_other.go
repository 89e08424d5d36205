//go:build !linux

package player

import (
	"strconv"

	"github.com/gen2brain/go-mpv"
)

// Without cgo node commands the positional form is used; mpv fills res_x and
// res_y positionally after data.
func osdOverlaySet(m *mpv.Mpv, id int, data string, resX, resY int) error {
	return m.Command([]string{"osd-overlay", strconv.Itoa(id), "ass-events", data, strconv.Itoa(resX), strconv.Itoa(resY)})
}

func osdOverlayRemove(m *mpv.Mpv, id int) error {
	return m.Command([]string{"osd-overlay", strconv.Itoa(id), "none", ""})
}
