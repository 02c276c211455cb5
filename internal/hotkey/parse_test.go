package hotkey

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Key
	}{
		{
			name: "single character",
			spec: "a",
			want: []Key{{Kind: KindChar, Char: 'a'}},
		},
		{
			name: "modifier and character",
			spec: "<ctrl>+a",
			want: []Key{
				{Kind: KindModifier, Name: "ctrl", VK: 17},
				{Kind: KindChar, Char: 'a'},
			},
		},
		{
			name: "named special key",
			spec: "<ctrl>+<f3>",
			want: []Key{
				{Kind: KindModifier, Name: "ctrl", VK: 17},
				{Kind: KindSpecial, Name: "f3", VK: 114},
			},
		},
		{
			name: "raw virtual-key code",
			spec: "<104>",
			want: []Key{{Kind: KindCode, Name: "104", VK: 104}},
		},
		{
			name: "modifier only",
			spec: "<shift>",
			want: []Key{{Kind: KindModifier, Name: "shift", VK: 16}},
		},
		{
			name: "all modifiers",
			spec: "<shift>+<ctrl>+<alt>+<cmd>+x",
			want: []Key{
				{Kind: KindModifier, Name: "shift", VK: 16},
				{Kind: KindModifier, Name: "ctrl", VK: 17},
				{Kind: KindModifier, Name: "alt", VK: 18},
				{Kind: KindModifier, Name: "cmd", VK: 91},
				{Kind: KindChar, Char: 'x'},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.spec, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %d keys, want %d", tt.spec, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %+v, want %+v", tt.spec, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"empty token", "<ctrl>+"},
		{"unbracketed word", "ctrl+a"},
		{"unknown name", "<banana>"},
		{"out of range code", "<70000>"},
		{"negative code", "<-1>"},
		{"unterminated bracket", "<ctrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.spec); err == nil {
				t.Errorf("Parse(%q) should fail", tt.spec)
			}
		})
	}
}
