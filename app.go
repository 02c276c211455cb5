package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/config"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/hotkey"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/i18n"
	"github.com/xurxogr/foxhole-stockpiles-client/internal/upload"
)

const (
	settingsFileName = "config.json"
	legacyFileName   = "config.toml"
)

// App is the Wails-bound application service. All state behind mu; the
// hotkey callback and the settings watcher run on their own goroutines.
type App struct {
	ctx   context.Context
	ctxMu sync.RWMutex

	mu           sync.Mutex
	settings     config.Settings
	settingsPath string
	translator   *i18n.Translator
	registered   string // transcoded combination currently registered, "" when none
	counter      int
	savedAt      time.Time

	hotkeys  *hotkey.Manager
	uploader *upload.Client
	watcher  *fsnotify.Watcher

	logMu  sync.Mutex
	logBuf []string
}

// NewApp creates the application service with its backend helpers.
func NewApp() *App {
	return &App{
		hotkeys:  hotkey.NewManager(),
		uploader: upload.NewClient(),
	}
}

// startup loads settings (importing the legacy file when no JSON settings
// exist yet), prepares the translator and starts the settings file watcher.
func (a *App) startup(ctx context.Context) {
	a.ctxMu.Lock()
	a.ctx = ctx
	a.ctxMu.Unlock()

	path, err := settingsPath()
	if err != nil {
		log.Printf("Warning: Could not resolve config directory: %v. Using working directory.", err)
		path = settingsFileName
	}

	settings, err := loadOrImport(path)
	if err != nil {
		log.Printf("Warning: %v. Using default settings.", err)
		settings = config.Default()
	}

	a.mu.Lock()
	a.settingsPath = path
	a.settings = settings
	a.mu.Unlock()

	a.reloadTranslator(settings.Language)

	watcher, err := config.Watch(path, a.onSettingsFileChanged)
	if err != nil {
		log.Printf("Warning: Could not watch settings file: %v", err)
	} else {
		a.watcher = watcher
	}

	if settings.Keybind.Key == nil || *settings.Keybind.Key == "" {
		a.message(a.t("app.status.keybind_not_set", nil))
	}
	if !settings.Server.AuthConfigured() {
		a.message(a.t("app.status.auth_not_configured", nil))
	}
}

// shutdown stops the keyboard hook and the settings watcher.
func (a *App) shutdown(ctx context.Context) {
	a.hotkeys.Shutdown()
	if a.watcher != nil {
		a.watcher.Close()
	}
	log.Println("=== Foxhole Stockpiles Client stopped ===")
}

// loadOrImport reads the JSON settings file. When it does not exist, the
// legacy TOML config is imported from the same directory or the working
// directory and persisted in the new format.
func loadOrImport(path string) (config.Settings, error) {
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}

	for _, legacy := range []string{
		filepath.Join(filepath.Dir(path), legacyFileName),
		legacyFileName,
	} {
		settings, found, err := config.ImportLegacy(legacy)
		if err != nil {
			return config.Default(), err
		}
		if !found {
			continue
		}
		if err := settings.Save(path); err != nil {
			log.Printf("Warning: Could not persist imported settings: %v", err)
		}
		return settings, nil
	}
	return config.Load(path)
}

func settingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "foxhole-stockpiles")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// onSettingsFileChanged reloads settings after an external edit. Writes made
// by SaveSettings itself are ignored via the savedAt timestamp.
func (a *App) onSettingsFileChanged() {
	a.mu.Lock()
	recentSave := time.Since(a.savedAt) < time.Second
	path := a.settingsPath
	a.mu.Unlock()
	if recentSave {
		return
	}

	settings, err := config.Load(path)
	if err != nil {
		log.Printf("Warning: Could not reload settings: %v", err)
		return
	}

	a.mu.Lock()
	a.settings = settings
	a.mu.Unlock()

	a.reloadTranslator(settings.Language)
	a.message(a.t("app.status.settings_reloaded", nil))
	a.refreshHotkey()
	a.emit("settings:changed", nil)
}

func (a *App) reloadTranslator(language string) {
	tr, err := i18n.New(language)
	if err != nil {
		log.Printf("Warning: Could not load translations: %v", err)
		return
	}
	a.mu.Lock()
	a.translator = tr
	a.mu.Unlock()
}

// refreshHotkey re-registers the global hotkey from current settings if
// capture is running.
func (a *App) refreshHotkey() {
	if !a.hotkeys.Enabled() {
		return
	}
	a.hotkeys.Disable()
	if err := a.enableHotkey(); err != nil {
		a.message(a.t("app.status.invalid_keybind", nil))
		a.emit("capture:stopped", nil)
	}
}

// t resolves a translation key under the current language.
func (a *App) t(key string, params map[string]string) string {
	a.mu.Lock()
	tr := a.translator
	a.mu.Unlock()
	if tr == nil {
		return key
	}
	return tr.Get(key, params)
}

// message appends a timestamped line to the activity log and pushes it to
// the UI.
func (a *App) message(text string) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), text)
	log.Println(text)

	a.logMu.Lock()
	a.logBuf = append(a.logBuf, line)
	a.logMu.Unlock()

	a.emit("app:log", line)
}

// LogText returns the full activity log as shown in the window.
func (a *App) LogText() string {
	a.logMu.Lock()
	defer a.logMu.Unlock()
	return strings.Join(a.logBuf, "\n")
}

func (a *App) emit(name string, payload any) {
	a.ctxMu.RLock()
	ctx := a.ctx
	a.ctxMu.RUnlock()
	if ctx == nil {
		return
	}
	runtime.EventsEmit(ctx, name, payload)
}
