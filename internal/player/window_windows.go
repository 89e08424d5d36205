//go:build windows

package player

import "syscall"

var procGetForegroundWindow = syscall.NewLazyDLL("user32.dll").NewProc("GetForegroundWindow")

// WindowHandle returns the HWND of the foreground window.
func WindowHandle() (int64, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, ErrNoWindow
	}
	return int64(hwnd), nil
}
