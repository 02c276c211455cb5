// Package keybind turns live key press/release sequences into canonical
// hotkey combination strings such as "<ctrl>+<shift>+numpad_8".
package keybind

import (
	"strconv"
	"strings"
)

// Kind discriminates the closed set of key shapes the recorder understands.
type Kind int

const (
	// KindModifier is one of ctrl, shift, alt, cmd (side variants collapsed).
	KindModifier Kind = iota
	// KindSpecial is a named non-modifier key (space, f4, left, ...).
	KindSpecial
	// KindNumpad is a numeric-keypad key identified by its virtual-key code.
	KindNumpad
	// KindChar is a plain printable character key.
	KindChar
)

// Key is one physical key as reported by the OS hook.
type Key struct {
	Kind Kind
	Name string // modifier or special name
	VK   uint16 // virtual-key code for specials and numpad keys
	Char rune   // printable character for KindChar
}

// Modifier raw codes, generic plus left/right variants. The canonical name
// always collapses to the plain form.
var modifierNames = map[uint16]string{
	16: "shift", 160: "shift", 161: "shift",
	17: "ctrl", 162: "ctrl", 163: "ctrl",
	18: "alt", 164: "alt", 165: "alt",
	91: "cmd", 92: "cmd",
}

// Named special keys by virtual-key code. Names match the combination parser
// in internal/hotkey so captured combinations round-trip through Transcode.
var specialNames = map[uint16]string{
	8: "backspace", 9: "tab", 13: "enter", 19: "pause", 20: "caps_lock",
	27: "esc", 32: "space", 33: "page_up", 34: "page_down", 35: "end",
	36: "home", 37: "left", 38: "up", 39: "right", 40: "down",
	44: "print_screen", 45: "insert", 46: "delete", 93: "menu",
	112: "f1", 113: "f2", 114: "f3", 115: "f4", 116: "f5", 117: "f6",
	118: "f7", 119: "f8", 120: "f9", 121: "f10", 122: "f11", 123: "f12",
	144: "num_lock", 145: "scroll_lock",
}

const (
	vkNumpad0    = 96
	vkNumpad9    = 105
	vkNumpadPlus = 107
	vkNumpadSub  = 109
)

// FromEvent classifies a raw hook event into a Key. rawcode is the platform
// virtual-key code, keychar the printable character (0 or 65535 when absent).
func FromEvent(rawcode uint16, keychar rune) Key {
	if name, ok := modifierNames[rawcode]; ok {
		return Key{Kind: KindModifier, Name: name, VK: rawcode}
	}
	if (rawcode >= vkNumpad0 && rawcode <= vkNumpad9) || rawcode == vkNumpadPlus || rawcode == vkNumpadSub {
		return Key{Kind: KindNumpad, VK: rawcode}
	}
	if name, ok := specialNames[rawcode]; ok {
		return Key{Kind: KindSpecial, Name: name, VK: rawcode}
	}
	// Letter and digit keys are classified by virtual-key code: key-pressed
	// events arrive before the typed event that carries the character.
	if rawcode >= '0' && rawcode <= '9' {
		return Key{Kind: KindChar, Char: rune(rawcode)}
	}
	if rawcode >= 'A' && rawcode <= 'Z' {
		return Key{Kind: KindChar, Char: rune(rawcode + ('a' - 'A'))}
	}
	if keychar != 0 && keychar != 65535 {
		return Key{Kind: KindChar, Char: keychar}
	}
	// Exotic keys keep their raw code; the parser accepts <nnn> tokens, so
	// these still register as global hotkeys.
	return Key{Kind: KindSpecial, Name: strconv.Itoa(int(rawcode)), VK: rawcode}
}

// Canonical renders a Key as its display token.
func Canonical(k Key) string {
	switch k.Kind {
	case KindModifier, KindSpecial:
		return "<" + k.Name + ">"
	case KindNumpad:
		switch k.VK {
		case vkNumpadPlus:
			return "numpad_plus"
		case vkNumpadSub:
			return "numpad_-"
		default:
			return "numpad_" + strconv.Itoa(int(k.VK-vkNumpad0))
		}
	default:
		return strings.ReplaceAll(string(k.Char), "'", "")
	}
}

// IsEscape reports whether the key cancels an in-flight capture.
func (k Key) IsEscape() bool {
	return k.Kind == KindSpecial && k.Name == "esc"
}
