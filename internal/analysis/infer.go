package analysis

import (
	"regexp"
	"strconv"
)

// scorePattern has two alternatives; whichever matches leftmost wins:
// "87%" (digits, optional spaces, percent sign) and "match score: 72".
var scorePattern = regexp.MustCompile(`(?i)([0-9]{1,3})\s*%|match\s*score\s*:?\s*([0-9]{1,3})`)

// InferScore extracts a score from free-form text. It returns nil when the
// text mentions no percentage and no "match score". The value is not clamped.
func InferScore(text string) *int {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	digits := m[1]
	if digits == "" {
		digits = m[2]
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}

	return &n
}
