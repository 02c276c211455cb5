//go:build windows

package capture

import (
	"image"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows      = user32.NewProc("EnumWindows")
	procGetWindowTextW   = user32.NewProc("GetWindowTextW")
	procIsWindowVisible  = user32.NewProc("IsWindowVisible")
	procIsIconic         = user32.NewProc("IsIconic")
	procGetForeground    = user32.NewProc("GetForegroundWindow")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procClientToScreen   = user32.NewProc("ClientToScreen")
	procSetProcessDPIAwr = user32.NewProc("SetProcessDPIAware")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type point struct {
	X, Y int32
}

func init() {
	// Without DPI awareness Windows reports scaled coordinates and the
	// captured region drifts on high-DPI displays.
	procSetProcessDPIAwr.Call()
}

func findGameWindow() (GameWindow, error) {
	hwnd, title := findWindowByPrefix(TitlePrefix)
	if hwnd == 0 {
		return GameWindow{}, ErrWindowNotFound
	}

	if minimized, _, _ := procIsIconic.Call(hwnd); minimized != 0 {
		return GameWindow{}, ErrWindowMinimized
	}

	if fg, _, _ := procGetForeground.Call(); fg != hwnd {
		return GameWindow{}, ErrWindowInactive
	}

	var r rect
	if ok, _, _ := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
		return GameWindow{}, ErrWindowNotFound
	}
	origin := point{}
	procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&origin)))

	bounds := image.Rect(
		int(origin.X), int(origin.Y),
		int(origin.X)+int(r.Right-r.Left), int(origin.Y)+int(r.Bottom-r.Top),
	)
	return GameWindow{Title: title, Bounds: bounds}, nil
}

// findWindowByPrefix walks the top-level windows and returns the first
// visible one whose title starts with prefix.
func findWindowByPrefix(prefix string) (uintptr, string) {
	var (
		found uintptr
		title string
	)
	cb := syscall.NewCallback(func(hwnd, _ uintptr) uintptr {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
			return 1 // continue enumeration
		}
		t := windowTitle(hwnd)
		if !strings.HasPrefix(t, prefix) {
			return 1
		}
		found = hwnd
		title = t
		return 0 // stop
	})
	procEnumWindows.Call(cb, 0)
	return found, title
}

func windowTitle(hwnd uintptr) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}
