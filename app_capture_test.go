package main

import (
	"testing"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/capture"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/config"
)

func TestWindowStatusKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", capture.ErrWindowNotFound, "app.status.not_running"},
		{"minimized", capture.ErrWindowMinimized, "app.status.minimized"},
		{"inactive", capture.ErrWindowInactive, "app.status.not_active"},
		{"unsupported platform", capture.ErrUnsupported, "app.status.not_running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowStatusKey(tt.err); got != tt.want {
				t.Errorf("windowStatusKey(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestCanCapture(t *testing.T) {
	key := "<ctrl>+<114>"
	auth := config.AuthBearer
	token := "secret"

	tests := []struct {
		name     string
		settings config.Settings
		want     bool
	}{
		{
			name:     "no keybind",
			settings: config.Default(),
			want:     false,
		},
		{
			name: "keybind without auth requirements",
			settings: func() config.Settings {
				s := config.Default()
				s.Keybind.Key = &key
				return s
			}(),
			want: true,
		},
		{
			name: "keybind with incomplete bearer auth",
			settings: func() config.Settings {
				s := config.Default()
				s.Keybind.Key = &key
				s.Server.AuthType = &auth
				return s
			}(),
			want: false,
		},
		{
			name: "keybind with complete bearer auth",
			settings: func() config.Settings {
				s := config.Default()
				s.Keybind.Key = &key
				s.Server.AuthType = &auth
				s.Server.Token = &token
				return s
			}(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &App{settings: tt.settings}
			if got := app.CanCapture(); got != tt.want {
				t.Errorf("CanCapture() = %v, want %v", got, tt.want)
			}
		})
	}
}
