package cli

import (
	"fmt"

	"github.com/at-ishikawa/quizflow/internal/session"
	"github.com/charmbracelet/lipgloss"
)

var dashboardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

// renderDashboard renders the aggregate stats of the current batch.
func renderDashboard(stats session.Stats, noColor bool) string {
	line := fmt.Sprintf("Questions: %d | Correct: %d | Wrong: %d | Accuracy: %d%%",
		stats.TotalQuestions,
		stats.CorrectCount,
		stats.WrongCount,
		stats.AccuracyPercent,
	)
	if noColor {
		return line
	}

	accuracyColor := lipgloss.Color("196")
	switch {
	case stats.RevealedCount == 0:
		accuracyColor = lipgloss.Color("244")
	case stats.AccuracyPercent >= 80:
		accuracyColor = lipgloss.Color("42")
	case stats.AccuracyPercent >= 50:
		accuracyColor = lipgloss.Color("220")
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		fmt.Sprintf("Questions: %d  ", stats.TotalQuestions),
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(fmt.Sprintf("Correct: %d", stats.CorrectCount)),
		"  ",
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Wrong: %d", stats.WrongCount)),
		"  ",
		lipgloss.NewStyle().Foreground(accuracyColor).Bold(true).Render(fmt.Sprintf("Accuracy: %d%%", stats.AccuracyPercent)),
	)
	return dashboardStyle.Render(content)
}
