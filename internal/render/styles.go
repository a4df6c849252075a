package render

import "github.com/charmbracelet/lipgloss"

const (
	colorIncome   = lipgloss.Color("#81c784")
	colorExpense  = lipgloss.Color("#e57373")
	colorBalance  = lipgloss.Color("#00695c")
	colorAlert    = lipgloss.Color("#c62828")
	colorMuted    = lipgloss.Color("#7f849c")
	colorHeading  = lipgloss.Color("#89b4fa")
	colorAdviceBg = lipgloss.Color("#fff8e1")
)

// barWidth is the number of cells of a full category bar
const barWidth = 20

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorHeading).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	alertStyle = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	incomeStyle  = lipgloss.NewStyle().Foreground(colorIncome)
	expenseStyle = lipgloss.NewStyle().Foreground(colorExpense)

	advicePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorAdviceBg).
				Padding(0, 1)
)

// tagStyle renders a category label with its metadata color as background
func tagStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("#333333")).
		Padding(0, 1)
}
