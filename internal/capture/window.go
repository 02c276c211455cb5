// Package capture locates the game window and grabs its client area as a
// PNG-encodable image.
package capture

import (
	"errors"
	"image"
)

// TitlePrefix identifies the game window. Foxhole titles its window after the
// current war ("War 123"), so a prefix match is the stable way to find it.
const TitlePrefix = "War"

// Window lookup errors. Each maps to a distinct status message; a capture
// attempt that hits one is skipped, not failed.
var (
	ErrWindowNotFound  = errors.New("game window not found")
	ErrWindowMinimized = errors.New("game window is minimized")
	ErrWindowInactive  = errors.New("game window is not the active window")
	ErrUnsupported     = errors.New("window capture is not supported on this platform")
)

// GameWindow describes the located game window. Bounds is the client area in
// virtual-screen coordinates, excluding title bar and borders.
type GameWindow struct {
	Title  string
	Bounds image.Rectangle
}

// FindGameWindow locates the game window and checks that it can be captured:
// it must exist, not be minimized and hold the foreground.
func FindGameWindow() (GameWindow, error) {
	return findGameWindow()
}
