package main

import (
	"testing"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/config"
)

func TestProfileURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https with path", "https://fs.example.org/fs/ocr/scan_image", "https://fs.example.org/profile"},
		{"http with port", "http://localhost:8080/scan", "http://localhost:8080/profile"},
		{"bare origin", "https://fs.example.org", "https://fs.example.org/profile"},
		{"not a url is left alone", "not a url", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profileURL(tt.url); got != tt.want {
				t.Errorf("profileURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSettingsDTORoundTrip(t *testing.T) {
	dto := SettingsDTO{
		Key:      "<ctrl>+<114>",
		URL:      "https://fs.example.org/scan",
		AuthType: "BEARER",
		Token:    "secret",
		Language: "es",
	}

	settings := dto.toSettings()
	if *settings.Keybind.Key != "<ctrl>+<114>" {
		t.Errorf("Keybind.Key = %q, want %q", *settings.Keybind.Key, "<ctrl>+<114>")
	}
	if settings.Server.Username != nil || settings.Server.Password != nil {
		t.Error("empty credential fields must convert to nil, not empty strings")
	}
	if *settings.Server.AuthType != config.AuthBearer {
		t.Errorf("AuthType = %q, want BEARER", *settings.Server.AuthType)
	}
	if settings.Webhook.Token != nil || settings.Webhook.Header != nil {
		t.Error("empty webhook fields must convert to nil")
	}
	if err := settings.Validate(); err != nil {
		t.Errorf("converted settings should validate: %v", err)
	}

	app := &App{settings: settings}
	back := app.GetSettings()
	if back != dto {
		t.Errorf("GetSettings() = %+v, want %+v", back, dto)
	}
}

func TestSettingsDTODefaults(t *testing.T) {
	settings := SettingsDTO{}.toSettings()
	if settings.Server.URL != config.DefaultURL {
		t.Errorf("empty URL should fall back to default, got %q", settings.Server.URL)
	}
	if settings.Language != "en" {
		t.Errorf("empty language should fall back to en, got %q", settings.Language)
	}
	if settings.Keybind.Key != nil {
		t.Error("empty key should stay unset")
	}
}
