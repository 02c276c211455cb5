// Package config persists the application settings and validates them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// DefaultURL is used when no server URL has been configured yet.
const DefaultURL = "https://backend.com/fs/ocr/scan_image"

// AuthType selects how the upload request authenticates.
type AuthType string

const (
	AuthBasic  AuthType = "BASIC"
	AuthBearer AuthType = "BEARER"
)

// KeybindSettings holds the capture keybind.
type KeybindSettings struct {
	// Key is the canonical combination string, nil when unset.
	Key *string `json:"key"`
}

// ServerSettings holds the upload endpoint and its credentials. A nil
// AuthType means no authentication. Optional fields are pointers so an
// absent value stays absent across save/load round trips.
type ServerSettings struct {
	URL      string    `json:"url"`
	AuthType *AuthType `json:"auth_type"`
	Username *string   `json:"username"`
	Password *string   `json:"password"`
	Token    *string   `json:"token"`
}

// WebhookSettings holds the optional forward-auth header added to uploads.
type WebhookSettings struct {
	Token  *string `json:"token"`
	Header *string `json:"header"`
}

// Settings is the full application configuration.
type Settings struct {
	Keybind  KeybindSettings `json:"keybind"`
	Server   ServerSettings  `json:"server"`
	Webhook  WebhookSettings `json:"webhook"`
	Language string          `json:"language"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Server:   ServerSettings{URL: DefaultURL},
		Language: "en",
	}
}

// Load reads settings from a JSON file. A missing file yields defaults;
// unknown fields are ignored; empty fields fall back to defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Server.URL == "" {
		s.Server.URL = DefaultURL
	}
	if s.Language == "" {
		s.Language = "en"
	}
	return s, nil
}

// Save writes settings as indented JSON.
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	log.Printf("Settings saved to %s", path)
	return nil
}

// Protected header names the webhook header may not override.
var protectedHeaders = map[string]struct{}{
	"authorization":       {},
	"host":                {},
	"connection":          {},
	"content-length":      {},
	"transfer-encoding":   {},
	"te":                  {},
	"trailer":             {},
	"upgrade":             {},
	"proxy-authorization": {},
	"proxy-authenticate":  {},
	"content-encoding":    {},
	"content-type":        {},
}

// Validation errors surfaced inline by the settings dialog.
var (
	ErrBasicCredentialsRequired = errors.New("username and password are required when auth type is BASIC")
	ErrBasicTokenForbidden      = errors.New("token must be empty when auth type is BASIC")
	ErrBearerTokenRequired      = errors.New("token is required when auth type is BEARER")
	ErrBearerCredentialsSet     = errors.New("username and password must be empty when auth type is BEARER")
	ErrAuthFieldsWithoutType    = errors.New("username, password and token must be empty when auth type is none")
	ErrWebhookHeaderRequired    = errors.New("header name is required when the webhook token is set")
	ErrWebhookTokenRequired     = errors.New("webhook token is required when the header name is set")
	ErrProtectedHeader          = errors.New("webhook header overrides a protected header")
	ErrInvalidHeaderName        = errors.New("webhook header may only contain letters, digits, '-' and '_'")
	ErrInvalidAuthType          = errors.New("unknown auth type")
)

// Validate checks that credential fields exactly match the selected auth
// mode and that the webhook pair is consistent. It never mutates settings.
func (s Settings) Validate() error {
	if err := s.Server.validate(); err != nil {
		return err
	}
	return s.Webhook.validate()
}

func (s ServerSettings) validate() error {
	switch {
	case s.AuthType == nil:
		if set(s.Username) || set(s.Password) || set(s.Token) {
			return ErrAuthFieldsWithoutType
		}
	case *s.AuthType == AuthBasic:
		if !set(s.Username) || !set(s.Password) {
			return ErrBasicCredentialsRequired
		}
		if s.Token != nil {
			return ErrBasicTokenForbidden
		}
	case *s.AuthType == AuthBearer:
		if !set(s.Token) {
			return ErrBearerTokenRequired
		}
		if s.Username != nil || s.Password != nil {
			return ErrBearerCredentialsSet
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAuthType, *s.AuthType)
	}
	return nil
}

func (w WebhookSettings) validate() error {
	if set(w.Token) && !set(w.Header) {
		return ErrWebhookHeaderRequired
	}
	if set(w.Header) && !set(w.Token) {
		return ErrWebhookTokenRequired
	}
	if set(w.Header) {
		name := *w.Header
		if _, bad := protectedHeaders[strings.ToLower(name)]; bad {
			return fmt.Errorf("%w: %s", ErrProtectedHeader, name)
		}
		for _, r := range name {
			if !isHeaderRune(r) {
				return fmt.Errorf("%w: %s", ErrInvalidHeaderName, name)
			}
		}
	}
	return nil
}

// AuthConfigured reports whether the credentials required by the selected
// auth mode are present. With no auth mode there is nothing to configure.
func (s ServerSettings) AuthConfigured() bool {
	switch {
	case s.AuthType == nil:
		return true
	case *s.AuthType == AuthBasic:
		return set(s.Username) && set(s.Password)
	case *s.AuthType == AuthBearer:
		return set(s.Token)
	}
	return false
}

func set(p *string) bool { return p != nil && *p != "" }

func isHeaderRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
