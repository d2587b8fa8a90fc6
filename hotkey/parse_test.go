package hotkey

import "testing"

func TestParseCombo(t *testing.T) {
	tests := []struct {
		input string
		want  Combo
	}{
		{"ctrl+shift+space", Combo{Ctrl: true, Shift: true, Key: "space"}},
		{"Ctrl+Alt+D", Combo{Ctrl: true, Alt: true, Key: "d"}},
		{"super+f5", Combo{Super: true, Key: "f5"}},
		{"win+alt+d", Combo{Super: true, Alt: true, Key: "d"}},
		{"ctrl+1", Combo{Ctrl: true, Key: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCombo(tt.input)
			if err != nil {
				t.Fatalf("ParseCombo(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCombo(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseComboRejects(t *testing.T) {
	for _, input := range []string{
		"",
		"space",            // no modifier
		"ctrl+shift",       // no key
		"ctrl+banana",      // unknown key
		"ctrl+a+b",         // two keys
		"ctrl++space",      // empty part
		"ctrl+f13",         // out-of-range function key
	} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseCombo(input); err == nil {
				t.Errorf("ParseCombo(%q) accepted invalid shortcut", input)
			}
		})
	}
}

func TestComboString(t *testing.T) {
	c := Combo{Ctrl: true, Shift: true, Key: "space"}
	if got := c.String(); got != "ctrl+shift+space" {
		t.Errorf("String() = %q", got)
	}
}
