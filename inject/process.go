// Package inject turns raw transcripts into text in the focused application.
package inject

import (
	"regexp"
	"sort"
	"strings"
)

// Process cleans a raw transcript: control characters are stripped, word
// overrides applied, spacing normalized, and the style guide applied last.
// An empty result means nothing should be injected.
func Process(text string, overrides map[string]string, style Style) string {
	text = sanitize(text)
	text = applyOverrides(text, overrides)
	text = normalizeSpacing(text)
	if text == "" {
		return ""
	}
	return style.Apply(text)
}

// sanitize drops control characters. Tab and newline count as whitespace.
func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// applyOverrides replaces whole words, longest key first so "pull request"
// wins over "pull". Matching is case-insensitive.
func applyOverrides(text string, overrides map[string]string) string {
	if len(overrides) == 0 {
		return text
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllLiteralString(text, overrides[k])
	}
	return text
}

var (
	spaceRuns   = regexp.MustCompile(`\s+`)
	spaceBefore = regexp.MustCompile(`\s+([.,!?;:])`)
)

func normalizeSpacing(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = spaceBefore.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
