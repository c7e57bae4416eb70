package model

import "strings"

// ParseOptions splits a newline-delimited option blob into an ordered list.
// Blank and whitespace-only lines are dropped; surviving lines are kept
// verbatim apart from a trailing carriage return.
func ParseOptions(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// FormatOptions is the inverse used to prefill the edit dialog.
func FormatOptions(options []string) string {
	return strings.Join(options, "\n")
}
