// Package hotkey registers global hotkeys and parses the combination strings
// that describe them. A combination is "+"-separated tokens: bracketed
// modifiers (<ctrl>, <shift>, <alt>, <cmd>), bracketed named keys (<f3>,
// <space>), bracketed raw virtual-key codes (<104>) or single characters.
package hotkey

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind discriminates parsed combination tokens.
type Kind int

const (
	// KindModifier is shift, ctrl, alt or cmd.
	KindModifier Kind = iota
	// KindSpecial is a named non-modifier key with a known virtual-key code.
	KindSpecial
	// KindCode is a raw bracketed virtual-key code such as <104>.
	KindCode
	// KindChar is a plain character key.
	KindChar
)

// Key is one parsed token of a combination.
type Key struct {
	Kind Kind
	Name string
	VK   uint16
	Char rune
}

var modifierVK = map[string]uint16{
	"shift": 16,
	"ctrl":  17,
	"alt":   18,
	"cmd":   91,
}

// Virtual-key codes for named keys. Shared vocabulary with the capture side
// in internal/keybind, so recorded combinations always parse.
var specialVK = map[string]uint16{
	"backspace": 8, "tab": 9, "enter": 13, "pause": 19, "caps_lock": 20,
	"esc": 27, "space": 32, "page_up": 33, "page_down": 34, "end": 35,
	"home": 36, "left": 37, "up": 38, "right": 39, "down": 40,
	"print_screen": 44, "insert": 45, "delete": 46, "menu": 93,
	"f1": 112, "f2": 113, "f3": 114, "f4": 115, "f5": 116, "f6": 117,
	"f7": 118, "f8": 119, "f9": 120, "f10": 121, "f11": 122, "f12": 123,
	"num_lock": 144, "scroll_lock": 145,
}

// Parse splits a combination string into its keys. It fails on empty tokens,
// unbracketed multi-character tokens and unknown bracketed names.
func Parse(spec string) ([]Key, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty combination")
	}
	tokens := strings.Split(spec, "+")
	keys := make([]Key, 0, len(tokens))
	for _, tok := range tokens {
		k, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseToken(tok string) (Key, error) {
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		return Key{Kind: KindChar, Char: r}, nil
	}
	if !strings.HasPrefix(tok, "<") || !strings.HasSuffix(tok, ">") || len(tok) < 3 {
		return Key{}, fmt.Errorf("invalid token %q", tok)
	}
	name := tok[1 : len(tok)-1]
	if vk, ok := modifierVK[name]; ok {
		return Key{Kind: KindModifier, Name: name, VK: vk}, nil
	}
	if vk, ok := specialVK[name]; ok {
		return Key{Kind: KindSpecial, Name: name, VK: vk}, nil
	}
	if code, err := strconv.Atoi(name); err == nil && code >= 0 && code <= 0xFFFF {
		return Key{Kind: KindCode, Name: name, VK: uint16(code)}, nil
	}
	return Key{}, fmt.Errorf("unknown key %q", tok)
}
