package hotkey

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	gohook "github.com/robotn/gohook"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/keybind"
)

// ErrCaptureInProgress is returned when a second keybind capture is started
// while one is already waiting for keys.
var ErrCaptureInProgress = errors.New("keybind capture already in progress")

// gohook modifier mask bits.
const (
	maskShift uint16 = 1 << 0
	maskCtrl  uint16 = 1 << 1
	maskAlt   uint16 = 1 << 2
	maskCmd   uint16 = 1 << 3
)

var modifierMask = map[string]uint16{
	"shift": maskShift,
	"ctrl":  maskCtrl,
	"alt":   maskAlt,
	"cmd":   maskCmd,
}

// Manager owns the single OS keyboard hook. It serves two callers: the
// registered global hotkey (Enable/Disable) and blocking keybind captures
// (ReadCombination). While a capture is running, hotkey triggering is
// suspended; at most one hook is active at any time.
type Manager struct {
	mu           sync.Mutex
	registerOnce sync.Once
	hookRunning  bool
	processDone  chan struct{}

	enabled   bool
	spec      string
	combo     []Key
	onTrigger func()
	fired     bool

	capturing   bool
	recorder    *keybind.Recorder
	captureDone chan string
}

// NewManager creates a Manager with no hotkey and no hook running.
func NewManager() *Manager {
	return &Manager{}
}

// Enable parses spec, stores the trigger callback and starts the keyboard
// hook. A previously enabled hotkey is replaced.
func (m *Manager) Enable(spec string, fn func()) error {
	keys, err := Parse(spec)
	if err != nil {
		return fmt.Errorf("register hotkey %q: %w", spec, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = true
	m.spec = spec
	m.combo = keys
	m.onTrigger = fn
	m.fired = false
	m.startHookLocked()
	log.Printf("Registered global hotkey: %s", spec)
	return nil
}

// Disable unregisters the hotkey and stops the hook unless a capture still
// needs it.
func (m *Manager) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.enabled = false
	m.combo = nil
	m.onTrigger = nil
	m.fired = false
	if !m.capturing {
		m.stopHookLocked()
	}
	log.Printf("Unregistered global hotkey: %s", m.spec)
}

// Enabled reports whether a global hotkey is currently registered.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// ReadCombination blocks until the user completes a key combination or
// cancels with Escape (empty result). It runs the one keyboard hook for the
// duration of the call; the global hotkey stays silent meanwhile.
func (m *Manager) ReadCombination() (string, error) {
	m.mu.Lock()
	if m.capturing {
		m.mu.Unlock()
		return "", ErrCaptureInProgress
	}
	m.capturing = true
	m.recorder = keybind.NewRecorder()
	m.captureDone = make(chan string, 1)
	done := m.captureDone
	m.startHookLocked()
	m.mu.Unlock()

	combo := <-done

	m.mu.Lock()
	m.capturing = false
	m.recorder = nil
	m.captureDone = nil
	if !m.enabled {
		m.stopHookLocked()
	}
	m.mu.Unlock()
	return combo, nil
}

// Shutdown stops the hook. Pending captures resolve to an empty result.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = false
	m.combo = nil
	m.onTrigger = nil
	if m.capturing && m.captureDone != nil {
		m.captureDone <- ""
		m.capturing = false
		m.recorder = nil
		m.captureDone = nil
	}
	m.stopHookLocked()
}

func (m *Manager) startHookLocked() {
	if m.hookRunning {
		return
	}
	// gohook keeps registered callbacks across End/Start cycles, so they are
	// installed exactly once and routed through manager state.
	m.registerOnce.Do(func() {
		gohook.Register(gohook.KeyDown, []string{}, m.handleDown)
		gohook.Register(gohook.KeyHold, []string{}, m.handleDown)
		gohook.Register(gohook.KeyUp, []string{}, m.handleUp)
	})
	ch := gohook.Start()
	done := make(chan struct{})
	m.processDone = done
	go func() {
		<-gohook.Process(ch)
		close(done)
	}()
	m.hookRunning = true
	log.Println("Keyboard hook started")
}

func (m *Manager) stopHookLocked() {
	if !m.hookRunning {
		return
	}
	gohook.End()
	if m.processDone != nil {
		select {
		case <-m.processDone:
		case <-time.After(2 * time.Second):
			log.Println("Timeout waiting for keyboard hook to stop")
		}
	}
	m.processDone = nil
	m.hookRunning = false
	log.Println("Keyboard hook stopped")
}

func (m *Manager) handleDown(e gohook.Event) {
	m.mu.Lock()
	if m.capturing {
		k := keybind.FromEvent(e.Rawcode, e.Keychar)
		if m.recorder.Press(e.Rawcode, k) {
			m.finishCaptureLocked()
		}
		m.mu.Unlock()
		return
	}
	if !m.enabled || m.fired || !matches(m.combo, e.Mask, e.Rawcode, e.Keychar) {
		m.mu.Unlock()
		return
	}
	m.fired = true
	fn := m.onTrigger
	spec := m.spec
	m.mu.Unlock()

	log.Printf("Global hotkey triggered: %s", spec)
	go fn()
}

func (m *Manager) handleUp(e gohook.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.capturing {
		if m.recorder.Release(e.Rawcode) {
			m.finishCaptureLocked()
		}
		return
	}
	if m.fired && mainKeyMatches(mainKey(m.combo), e.Rawcode, e.Keychar) {
		m.fired = false
	}
}

func (m *Manager) finishCaptureLocked() {
	if m.captureDone == nil {
		return
	}
	m.captureDone <- m.recorder.Combination()
	m.captureDone = nil
}

// matches reports whether an event satisfies the combination: every modifier
// bit present in the mask and the main key matching the event. Extra held
// modifiers do not prevent a match.
func matches(combo []Key, mask uint16, rawcode uint16, keychar rune) bool {
	if len(combo) == 0 {
		return false
	}
	for _, k := range combo {
		if k.Kind != KindModifier {
			continue
		}
		if mask&modifierMask[k.Name] == 0 {
			return false
		}
	}
	return mainKeyMatches(mainKey(combo), rawcode, keychar)
}

// mainKey returns the single non-modifier key of a combination, falling back
// to the last modifier for modifier-only bindings.
func mainKey(combo []Key) Key {
	for _, k := range combo {
		if k.Kind != KindModifier {
			return k
		}
	}
	return combo[len(combo)-1]
}

func mainKeyMatches(k Key, rawcode uint16, keychar rune) bool {
	switch k.Kind {
	case KindSpecial, KindCode:
		return rawcode == k.VK
	case KindChar:
		if vk, ok := charVK(k.Char); ok && rawcode == vk {
			return true
		}
		return keychar != 0 && keychar != 65535 && lower(keychar) == lower(k.Char)
	default: // modifier-only binding
		return sameModifier(k.Name, rawcode)
	}
}

func charVK(r rune) (uint16, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint16(r), true
	case r >= 'a' && r <= 'z':
		return uint16(r - ('a' - 'A')), true
	case r >= 'A' && r <= 'Z':
		return uint16(r), true
	}
	return 0, false
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// sameModifier matches a modifier name against generic and sided raw codes.
func sameModifier(name string, rawcode uint16) bool {
	switch name {
	case "shift":
		return rawcode == 16 || rawcode == 160 || rawcode == 161
	case "ctrl":
		return rawcode == 17 || rawcode == 162 || rawcode == 163
	case "alt":
		return rawcode == 18 || rawcode == 164 || rawcode == 165
	case "cmd":
		return rawcode == 91 || rawcode == 92
	}
	return false
}
