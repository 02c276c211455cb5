package main

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gen2brain/beeep"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/capture"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/hotkey"
)

// CanCapture reports whether capture can be started: a keybind must be set
// and the credentials must match the selected auth mode.
func (a *App) CanCapture() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := a.settings.Keybind.Key
	return key != nil && *key != "" && a.settings.Server.AuthConfigured()
}

// CaptureEnabled reports whether the global hotkey is currently active.
func (a *App) CaptureEnabled() bool {
	return a.hotkeys.Enabled()
}

// StartCapture registers the global hotkey so screenshots can be taken while
// the game has focus.
func (a *App) StartCapture() error {
	if !a.CanCapture() {
		return errors.New("capture requires a keybind and configured authentication")
	}
	if err := a.enableHotkey(); err != nil {
		a.message(a.t("app.status.invalid_keybind", nil))
		return err
	}
	a.message(a.t("app.status.capture_enabled", nil))
	a.emit("capture:started", nil)
	return nil
}

// StopCapture unregisters the global hotkey.
func (a *App) StopCapture() {
	a.hotkeys.Disable()
	a.message(a.t("app.status.capture_disabled", nil))
	a.emit("capture:stopped", nil)
}

// enableHotkey transcodes the stored keybind into its registration form and
// enables it.
func (a *App) enableHotkey() error {
	a.mu.Lock()
	key := deref(a.settings.Keybind.Key)
	a.mu.Unlock()

	spec, err := hotkey.Transcode(key)
	if err != nil {
		log.Printf("Warning: %v", err)
		return err
	}
	return a.hotkeys.Enable(spec, a.onHotkey)
}

// onHotkey runs on its own goroutine for every hotkey press: locate the game
// window, grab its client area and upload it.
func (a *App) onHotkey() {
	window, err := capture.FindGameWindow()
	if err != nil {
		a.message(a.t(windowStatusKey(err), nil))
		return
	}

	img, err := capture.Grab(window)
	if err != nil {
		log.Printf("Error capturing window: %v", err)
		a.message(err.Error())
		return
	}

	a.mu.Lock()
	a.counter++
	n := strconv.Itoa(a.counter)
	server := a.settings.Server
	webhook := a.settings.Webhook
	a.mu.Unlock()

	a.message(a.t("app.status.sending", map[string]string{"n": n}))

	if url, err := capture.PreviewDataURL(img); err == nil {
		a.emit("capture:preview", url)
	}

	png, err := capture.EncodePNG(img)
	if err != nil {
		a.message(a.t("app.status.send_error", map[string]string{"n": n, "error": err.Error()}))
		return
	}

	text, err := a.uploader.Send(context.Background(), server, webhook, png)
	if err != nil {
		a.message(a.t("app.status.send_error", map[string]string{"n": n, "error": err.Error()}))
		return
	}

	a.message(a.t("app.status.result", map[string]string{"n": n, "message": text}))
	if err := beeep.Notify("Foxhole Stockpiles", text, ""); err != nil {
		log.Printf("Warning: Could not show notification: %v", err)
	}
}

// windowStatusKey maps window lookup errors to their status messages.
func windowStatusKey(err error) string {
	switch {
	case errors.Is(err, capture.ErrWindowMinimized):
		return "app.status.minimized"
	case errors.Is(err, capture.ErrWindowInactive):
		return "app.status.not_active"
	default:
		return "app.status.not_running"
	}
}
