//go:build !windows

package capture

// The game only runs on Windows; other platforms get a clear error instead
// of a broken capture.
func findGameWindow() (GameWindow, error) {
	return GameWindow{}, ErrUnsupported
}
