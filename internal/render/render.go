// Package render turns a normalized analysis result into terminal output.
package render

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder is shown in place of a missing score.
const Placeholder = "—"

var paragraphBreak = regexp.MustCompile(`\n\n+`)

// Badge formats the score for display, e.g. "87%" or "—%".
func Badge(score *int) string {
	if score == nil {
		return Placeholder + "%"
	}
	return strconv.Itoa(*score) + "%"
}

// ProgressWidth is the filled share of the progress bar in percent.
func ProgressWidth(score *int) int {
	if score == nil {
		return 0
	}
	return max(0, min(100, *score))
}

// Paragraphs splits text into paragraphs on runs of blank lines and each
// paragraph into lines on single newlines. Empty text has no paragraphs.
func Paragraphs(text string) [][]string {
	if text == "" {
		return nil
	}

	parts := paragraphBreak.Split(text, -1)
	paragraphs := make([][]string, 0, len(parts))
	for _, part := range parts {
		paragraphs = append(paragraphs, strings.Split(part, "\n"))
	}

	return paragraphs
}
