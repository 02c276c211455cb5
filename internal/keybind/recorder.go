package keybind

import "strings"

// Recorder accumulates one key combination from a stream of press/release
// events. It keeps modifiers in press order and latches the first
// non-modifier key; pressing "a" then "ctrl" yields "a", not "<ctrl>+a".
// That order sensitivity is deliberate and mirrors how the combination is
// later matched: modifiers first, one main key last.
type Recorder struct {
	held      map[uint16]struct{}
	modifiers []string
	key       string
	done      bool
	cancelled bool
}

// NewRecorder returns a Recorder in its initial (idle) state.
func NewRecorder() *Recorder {
	return &Recorder{held: map[uint16]struct{}{}}
}

// Press feeds a key-down event. rawcode identifies the physical key across
// its matching release. It returns true once the recorder reached a terminal
// state (only Escape terminates on a press).
func (r *Recorder) Press(rawcode uint16, k Key) bool {
	if r.done {
		return true
	}
	if k.IsEscape() {
		r.reset()
		r.cancelled = true
		r.done = true
		return true
	}

	r.held[rawcode] = struct{}{}

	// Once a non-modifier is latched every further press is ignored.
	if r.key != "" {
		return false
	}

	if k.Kind == KindModifier {
		token := Canonical(k)
		for _, m := range r.modifiers {
			if m == token {
				return false
			}
		}
		r.modifiers = append(r.modifiers, token)
		return false
	}

	r.key = Canonical(k)
	return false
}

// Release feeds a key-up event. Releases of keys that were never pressed are
// ignored. It returns true when the last held key was released and the
// combination is complete.
func (r *Recorder) Release(rawcode uint16) bool {
	if r.done {
		return true
	}
	if _, ok := r.held[rawcode]; !ok {
		return false
	}
	delete(r.held, rawcode)
	if len(r.held) == 0 {
		r.done = true
		return true
	}
	return false
}

// Done reports whether the recorder reached a terminal state.
func (r *Recorder) Done() bool { return r.done }

// Cancelled reports whether the capture was aborted with Escape.
func (r *Recorder) Cancelled() bool { return r.cancelled }

// Combination returns the recorded combination: ordered modifiers followed by
// the latched non-modifier token, joined with "+". Empty when nothing was
// recorded or the capture was cancelled.
func (r *Recorder) Combination() string {
	if r.cancelled {
		return ""
	}
	parts := make([]string, 0, len(r.modifiers)+1)
	parts = append(parts, r.modifiers...)
	if r.key != "" {
		parts = append(parts, r.key)
	}
	return strings.Join(parts, "+")
}

func (r *Recorder) reset() {
	r.held = map[uint16]struct{}{}
	r.modifiers = nil
	r.key = ""
}
