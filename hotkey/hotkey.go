// Package hotkey delivers global toggle events for the configured key combo.
package hotkey

import (
	"fmt"
	"strings"
)

// Hotkey fires one event per chord press. The daemon registers exactly one
// hotkey for its lifetime; press events drive the record/stop toggle.
type Hotkey interface {
	Register() error
	Unregister()
	Toggles() <-chan struct{}
}

// Combo is a parsed shortcut: modifier set plus exactly one key.
type Combo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Super bool
	Key   string // canonical: "a".."z", "0".."9", "space", "f1".."f12"
}

func (c Combo) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	if c.Super {
		parts = append(parts, "super")
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

func validKey(k string) bool {
	if len(k) == 1 {
		c := k[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	if k == "space" {
		return true
	}
	if strings.HasPrefix(k, "f") && len(k) <= 3 {
		n := 0
		for _, c := range k[1:] {
			if c < '0' || c > '9' {
				return false
			}
			n = n*10 + int(c-'0')
		}
		return n >= 1 && n <= 12
	}
	return false
}

// ParseCombo parses a shortcut like "ctrl+shift+space". It requires at least
// one modifier and exactly one key.
func ParseCombo(s string) (Combo, error) {
	var combo Combo
	for _, raw := range strings.Split(strings.ToLower(s), "+") {
		part := strings.TrimSpace(raw)
		switch part {
		case "":
			return Combo{}, fmt.Errorf("invalid shortcut %q", s)
		case "ctrl", "control":
			combo.Ctrl = true
		case "shift":
			combo.Shift = true
		case "alt", "option":
			combo.Alt = true
		case "super", "win", "cmd", "meta":
			combo.Super = true
		default:
			if !validKey(part) {
				return Combo{}, fmt.Errorf("unknown key %q in shortcut %q", part, s)
			}
			if combo.Key != "" {
				return Combo{}, fmt.Errorf("shortcut %q has more than one key", s)
			}
			combo.Key = part
		}
	}
	if combo.Key == "" {
		return Combo{}, fmt.Errorf("shortcut %q has no key", s)
	}
	if !combo.Ctrl && !combo.Shift && !combo.Alt && !combo.Super {
		return Combo{}, fmt.Errorf("shortcut %q needs at least one modifier", s)
	}
	return combo, nil
}
