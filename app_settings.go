package main

import (
	"regexp"
	"time"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/config"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/hotkey"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/i18n"
)

// SettingsDTO is the settings shape exchanged with the frontend. Optional
// fields travel as plain strings, empty meaning absent.
type SettingsDTO struct {
	Key           string `json:"key"`
	URL           string `json:"url"`
	AuthType      string `json:"authType"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Token         string `json:"token"`
	WebhookToken  string `json:"webhookToken"`
	WebhookHeader string `json:"webhookHeader"`
	Language      string `json:"language"`
}

// GetSettings returns the current settings for the settings dialog.
func (a *App) GetSettings() SettingsDTO {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.settings
	return SettingsDTO{
		Key:           deref(s.Keybind.Key),
		URL:           s.Server.URL,
		AuthType:      authTypeString(s.Server.AuthType),
		Username:      deref(s.Server.Username),
		Password:      deref(s.Server.Password),
		Token:         deref(s.Server.Token),
		WebhookToken:  deref(s.Webhook.Token),
		WebhookHeader: deref(s.Webhook.Header),
		Language:      s.Language,
	}
}

// SaveSettings validates and persists settings coming from the dialog, then
// applies them: translator, registered hotkey and capture availability all
// follow the new values.
func (a *App) SaveSettings(dto SettingsDTO) error {
	settings := dto.toSettings()
	if err := settings.Validate(); err != nil {
		return err
	}
	if dto.Key != "" {
		if _, err := hotkey.Transcode(dto.Key); err != nil {
			return err
		}
	}

	a.mu.Lock()
	path := a.settingsPath
	a.savedAt = time.Now()
	a.mu.Unlock()

	if err := settings.Save(path); err != nil {
		return err
	}

	a.mu.Lock()
	languageChanged := a.settings.Language != settings.Language
	a.settings = settings
	a.mu.Unlock()

	if languageChanged {
		a.reloadTranslator(settings.Language)
	}
	a.message(a.t("app.status.settings_saved", nil))
	a.refreshHotkey()
	a.emit("settings:changed", nil)
	return nil
}

func (dto SettingsDTO) toSettings() config.Settings {
	s := config.Default()
	s.Keybind.Key = optional(dto.Key)
	if dto.URL != "" {
		s.Server.URL = dto.URL
	}
	if dto.AuthType != "" {
		auth := config.AuthType(dto.AuthType)
		s.Server.AuthType = &auth
	}
	s.Server.Username = optional(dto.Username)
	s.Server.Password = optional(dto.Password)
	s.Server.Token = optional(dto.Token)
	s.Webhook.Token = optional(dto.WebhookToken)
	s.Webhook.Header = optional(dto.WebhookHeader)
	if dto.Language != "" {
		s.Language = dto.Language
	}
	return s
}

// ReadKeybind blocks until the user presses a key combination and returns it
// in canonical form. Escape cancels and returns an empty string.
func (a *App) ReadKeybind() (string, error) {
	return a.hotkeys.ReadCombination()
}

// Languages lists the available UI languages.
func (a *App) Languages() ([]i18n.Language, error) {
	return i18n.Languages()
}

// Translations hands the full catalog for the current language to the
// frontend.
func (a *App) Translations() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.translator == nil {
		return map[string]any{}
	}
	return a.translator.Catalog()
}

// OpenProfile opens the server's profile page, where users obtain their API
// token, in the default browser.
func (a *App) OpenProfile() error {
	a.mu.Lock()
	url := profileURL(a.settings.Server.URL)
	a.mu.Unlock()
	return open.Run(url)
}

// CopyLog puts the activity log on the system clipboard.
func (a *App) CopyLog() error {
	return clipboard.WriteAll(a.LogText())
}

var serverOriginPattern = regexp.MustCompile(`^(https?://[^/]+).*`)

// profileURL derives the token profile page from the configured server URL:
// scheme and host are kept, the path is replaced with /profile.
func profileURL(serverURL string) string {
	return serverOriginPattern.ReplaceAllString(serverURL, "$1/profile")
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func authTypeString(t *config.AuthType) string {
	if t == nil {
		return ""
	}
	return string(*t)
}
