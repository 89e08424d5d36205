//go:build linux

package player

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>

static long focused_window(void) {
    Display *d = XOpenDisplay(NULL);
    if (!d) return 0;
    Window w;
    int revert;
    XGetInputFocus(d, &w, &revert);
    XCloseDisplay(d);
    return (long)w;
}
*/
import "C"

// WindowHandle returns the X11 id of the focused window, which is the ebiten
// window right after it opens.
func WindowHandle() (int64, error) {
	wid := int64(C.focused_window())
	if wid <= 1 {
		return 0, ErrNoWindow
	}
	return wid, nil
}
