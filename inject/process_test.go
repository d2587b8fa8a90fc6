package inject

import "testing"

func TestProcessSanitizesControlChars(t *testing.T) {
	got := Process("hello\x00 world\x1b[0m", nil, Style{})
	if got != "hello world[0m" {
		t.Errorf("got %q", got)
	}
}

func TestProcessKeepsTabNewlineAsSpace(t *testing.T) {
	got := Process("one\ttwo\nthree", nil, Style{})
	if got != "one two three" {
		t.Errorf("got %q", got)
	}
}

func TestProcessWordOverrides(t *testing.T) {
	overrides := map[string]string{
		"pull":         "PULL",
		"pull request": "PR",
	}
	got := Process("open a Pull Request and pull the branch", overrides, Style{})
	if got != "open a PR and PULL the branch" {
		t.Errorf("longest-first override failed: %q", got)
	}
}

func TestProcessOverridesWholeWordsOnly(t *testing.T) {
	got := Process("gopher go going", map[string]string{"go": "Go"}, Style{})
	if got != "gopher Go going" {
		t.Errorf("got %q", got)
	}
}

func TestProcessNormalizesSpacing(t *testing.T) {
	got := Process("  well ,  yes . indeed  ", nil, Style{})
	if got != "well, yes. indeed" {
		t.Errorf("got %q", got)
	}
}

func TestProcessEmptyStaysEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n", "\x00\x01"} {
		if got := Process(input, nil, Style{}); got != "" {
			t.Errorf("Process(%q) = %q, want empty", input, got)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		prompt string
		want   Style
	}{
		{"", Style{}},
		{"sentence case", Style{Case: "sentence"}},
		{"UPPERCASE", Style{Case: "upper"}},
		{"make it lower", Style{Case: "lower"}},
		{"sentence case; prepend:> ", Style{Case: "sentence", Prefix: "> "}},
		{"append:!; upper", Style{Case: "upper", Suffix: "!"}},
		{"do a backflip", Style{}},
	}
	for _, tt := range tests {
		if got := ParseStyle(tt.prompt); got != tt.want {
			t.Errorf("ParseStyle(%q) = %+v, want %+v", tt.prompt, got, tt.want)
		}
	}
}

func TestStyleSentenceCase(t *testing.T) {
	s := Style{Case: "sentence"}
	got := s.Apply("hello there. general kenobi! you are bold")
	want := "Hello there. General kenobi! You are bold"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStylePrependAppend(t *testing.T) {
	s := Style{Prefix: "> ", Suffix: " --"}
	if got := s.Apply("quoted"); got != "> quoted --" {
		t.Errorf("got %q", got)
	}
}
