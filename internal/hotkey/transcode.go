package hotkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed marks a combination string the registration facility cannot
// parse. Callers must treat it as "no hotkey" rather than registering a
// partial binding.
var ErrMalformed = errors.New("malformed keybind")

// Transcode converts a canonical combination (as produced by the keybind
// recorder) into the form accepted for registration: numpad tokens and named
// special keys become bracketed virtual-key codes, while modifiers and plain
// character keys pass through untouched.
func Transcode(combo string) (string, error) {
	tokens := strings.Split(combo, "+")
	for i, tok := range tokens {
		t, err := transcodeNumpad(tok)
		if err != nil {
			return "", fmt.Errorf("%w [%s]: %v", ErrMalformed, combo, err)
		}
		tokens[i] = t
	}

	keys, err := Parse(strings.Join(tokens, "+"))
	if err != nil {
		return "", fmt.Errorf("%w [%s]: %v", ErrMalformed, combo, err)
	}

	out := make([]string, len(keys))
	for i, k := range keys {
		if k.Kind == KindSpecial {
			out[i] = fmt.Sprintf("<%d>", k.VK)
		} else {
			out[i] = tokens[i]
		}
	}
	return strings.Join(out, "+"), nil
}

func transcodeNumpad(tok string) (string, error) {
	suffix, ok := strings.CutPrefix(tok, "numpad_")
	if !ok {
		return tok, nil
	}
	switch suffix {
	case "plus":
		return "<107>", nil
	case "-":
		return "<109>", nil
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return "", fmt.Errorf("invalid numpad token %q", tok)
	}
	return fmt.Sprintf("<%d>", 96+n), nil
}
