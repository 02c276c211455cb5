package hotkey

import (
	"errors"
	"strings"
	"testing"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name  string
		combo string
		want  string
	}{
		{"plain character", "a", "a"},
		{"modifier and character", "<ctrl>+a", "<ctrl>+a"},
		{"named key becomes code", "<ctrl>+<f3>", "<ctrl>+<114>"},
		{"numpad digit", "numpad_8", "<104>"},
		{"numpad plus", "numpad_plus", "<107>"},
		{"numpad minus", "numpad_-", "<109>"},
		{"numpad with modifiers", "<ctrl>+<shift>+numpad_0", "<ctrl>+<shift>+<96>"},
		{"raw code passes through", "<104>", "<104>"},
		{"space", "<space>", "<32>"},
		{"modifier only", "<shift>", "<shift>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transcode(tt.combo)
			if err != nil {
				t.Fatalf("Transcode(%q) returned error: %v", tt.combo, err)
			}
			if got != tt.want {
				t.Errorf("Transcode(%q) = %q, want %q", tt.combo, got, tt.want)
			}
		})
	}
}

func TestTranscodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		combo string
	}{
		{"empty", ""},
		{"bad numpad suffix", "numpad_x"},
		{"unknown name", "<banana>"},
		{"unbracketed word", "ctrl+a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transcode(tt.combo)
			if err == nil {
				t.Fatalf("Transcode(%q) should fail", tt.combo)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Transcode(%q) error = %v, want ErrMalformed", tt.combo, err)
			}
			if !strings.Contains(err.Error(), "["+tt.combo+"]") {
				t.Errorf("Transcode(%q) error should carry the original combination, got %v", tt.combo, err)
			}
		})
	}
}
