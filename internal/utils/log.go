package utils

import "strings"

// TruncateForLog squeezes s onto one line and keeps at most limit runes, so
// multi-line resumes and model replies stay readable as a single log field.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
