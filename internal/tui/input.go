package tui

import (
	"strings"
	"unicode/utf8"
)

// maxInputLen is the maximum number of runes allowed in comment and form inputs.
const maxInputLen = 2000

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters.
// Returns the text unchanged for non-printable keys (enter, esc, etc.).
// Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// maskSecret replaces every rune of s with a bullet.
func maskSecret(s string) string {
	return strings.Repeat("•", utf8.RuneCountInString(s))
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// renderInputLine renders the single-line composer under the comment list.
func renderInputLine(input, placeholder string, focused, cursorOn bool) string {
	prompt := " " + inputPromptStyle.Render("> ")
	if !focused {
		if input == "" {
			return prompt + inputPlaceholderStyle.Render(placeholder)
		}
		return prompt + dimStyle.Render(input)
	}
	cursor := " "
	if cursorOn {
		cursor = accentStyle.Render("█")
	}
	return prompt + normalStyle.Render(input) + cursor
}
