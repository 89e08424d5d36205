//go:build !linux && !windows

package player

// WindowHandle is not supported here; mpv opens its own window.
func WindowHandle() (int64, error) {
	return 0, ErrNoWindow
}
