package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/resumefit/internal/analysis"
)

const (
	defaultBarWidth = 40
	scoreLabel      = "Match Score"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"})

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#5599FF"}).
			Bold(true)

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#5599FF"})

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#444444"})

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#444444"}).
			Padding(0, 1)
)

// Card renders the result block. It returns an empty string when the result
// has neither a score nor text. barWidth is the progress bar width in cells.
func Card(res analysis.Result, barWidth int) string {
	if !res.HasContent() {
		return ""
	}

	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(scoreLabel))
	b.WriteString("  ")
	b.WriteString(badgeStyle.Render(Badge(res.Score)))
	b.WriteString("\n")
	b.WriteString(ProgressBar(res.Score, barWidth))

	for _, paragraph := range Paragraphs(res.Text) {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(paragraph, "\n"))
	}

	return cardStyle.Render(b.String())
}

// ProgressBar draws a width-cell bar filled proportionally to the score.
func ProgressBar(score *int, width int) string {
	if width <= 0 {
		return ""
	}

	filled := ProgressWidth(score) * width / 100
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
