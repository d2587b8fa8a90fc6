package inject

import (
	"strings"
	"unicode"
)

// Style is the small set of transformations the post_processing config field
// supports: a casing rule plus optional prepend/append text.
type Style struct {
	Case   string // "", "sentence", "upper", "lower"
	Prefix string
	Suffix string
}

// ParseStyle reads a post_processing prompt like
// "sentence case; prepend:> ". Unknown directives are ignored.
func ParseStyle(prompt string) Style {
	var s Style
	for _, raw := range strings.Split(prompt, ";") {
		part := strings.TrimSpace(raw)
		lower := strings.ToLower(part)
		switch {
		case lower == "":
		case strings.HasPrefix(lower, "prepend:"):
			s.Prefix = part[len("prepend:"):]
		case strings.HasPrefix(lower, "append:"):
			s.Suffix = part[len("append:"):]
		case strings.Contains(lower, "sentence"):
			s.Case = "sentence"
		case strings.Contains(lower, "upper"):
			s.Case = "upper"
		case strings.Contains(lower, "lower"):
			s.Case = "lower"
		}
	}
	return s
}

func (s Style) Apply(text string) string {
	switch s.Case {
	case "sentence":
		text = sentenceCase(text)
	case "upper":
		text = strings.ToUpper(text)
	case "lower":
		text = strings.ToLower(text)
	}
	return s.Prefix + text + s.Suffix
}

// sentenceCase uppercases the first letter and any letter following a
// sentence terminator.
func sentenceCase(text string) string {
	runes := []rune(text)
	capNext := true
	for i, r := range runes {
		switch {
		case r == '.' || r == '!' || r == '?':
			capNext = true
		case unicode.IsLetter(r):
			if capNext {
				runes[i] = unicode.ToUpper(r)
			}
			capNext = false
		case unicode.IsSpace(r):
		default:
			capNext = false
		}
	}
	return string(runes)
}
