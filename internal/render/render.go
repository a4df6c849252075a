// Package render turns a dashboard View into terminal text or a structured report.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/kakeibo/internal/currencyutils"
	"fjacquet/kakeibo/internal/dashboard"
	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Output formats understood by GenerateReport
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Generator renders dashboard views in various formats.
type Generator struct {
	logger logging.Logger
	meta   models.CategoryMetaTable
}

// NewGenerator creates a new instance of Generator.
// A nil meta table renders with the built-in category colors.
func NewGenerator(logger logging.Logger, meta models.CategoryMetaTable) *Generator {
	return &Generator{
		logger: logger.WithField(logging.FieldComponent, "render"),
		meta:   meta,
	}
}

// GenerateReport renders the full view in the specified format (text, json or yaml).
// It returns an error if the format is unsupported or marshaling fails.
func (g *Generator) GenerateReport(view dashboard.View, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return []byte(g.Dashboard(view)), nil
	case FormatJSON:
		return g.generateJSONReport(view)
	case FormatYAML:
		return g.generateYAMLReport(view)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Structured renders any value as json or yaml; text is not supported here.
func (g *Generator) Structured(v interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.marshalJSON(v)
	case FormatYAML:
		return g.marshalYAML(v)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSONReport(view dashboard.View) ([]byte, error) {
	return g.marshalJSON(view)
}

func (g *Generator) generateYAMLReport(view dashboard.View) ([]byte, error) {
	return g.marshalYAML(view)
}

func (g *Generator) marshalJSON(v interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) marshalYAML(v interface{}) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

// Dashboard renders every section of the view.
func (g *Generator) Dashboard(view dashboard.View) string {
	sections := []string{
		titleStyle.Render("Kakeibo " + view.Month),
		g.Summary(view),
		g.Categories(view),
		g.Entries(view),
		g.Advice(view),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Summary renders the income/expense/balance cards and the budget line.
func (g *Generator) Summary(view dashboard.View) string {
	s := view.Summary
	balanceStyle := lipgloss.NewStyle().Foreground(colorBalance)
	if s.Balance < 0 {
		balanceStyle = expenseStyle
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Income", incomeStyle.Render(currencyutils.FormatYen(s.Income))),
		card("Expense", expenseStyle.Render(currencyutils.FormatYen(s.Expense))),
		card("Balance", balanceStyle.Render(currencyutils.FormatYen(s.Balance))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, cards, g.BudgetLine(view.Budget))
}

func card(label, value string) string {
	return cardStyle.Render(mutedStyle.Render(label) + "\n" + value)
}

// BudgetLine renders the budget status, with an alert when over budget.
func (g *Generator) BudgetLine(status models.BudgetStatus) string {
	if !status.IsSet() {
		return mutedStyle.Render("Budget not set")
	}

	line := fmt.Sprintf("Budget: %s / Remaining: %s",
		currencyutils.FormatYenDecimal(status.Budget),
		currencyutils.FormatYenDecimal(status.Remaining))

	if status.IsOver {
		return alertStyle.Render(line) + "\n" + alertStyle.Render("⚠ Over budget!")
	}
	return line
}

// Categories renders the expense breakdown with proportional bars.
func (g *Generator) Categories(view dashboard.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Expense breakdown"))

	items := view.Summary.Categories.Items()
	if len(items) == 0 {
		b.WriteString("\n" + mutedStyle.Render("No expenses this month"))
		return b.String()
	}

	width := 0
	for _, item := range items {
		if w := lipgloss.Width(item.Category); w > width {
			width = w
		}
	}

	for _, item := range items {
		meta := g.meta.Lookup(item.Category)
		pct := currencyutils.Percent(item.Amount, view.Summary.Expense)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(meta.Color)).
			Render(strings.Repeat("█", pct*barWidth/100))
		label := item.Category + strings.Repeat(" ", width-lipgloss.Width(item.Category))

		fmt.Fprintf(&b, "\n%s %10s %3d%% %s",
			label, currencyutils.FormatYen(item.Amount), pct, bar)
	}
	return b.String()
}

// Entries renders the entry list, newest first as stored.
func (g *Generator) Entries(view dashboard.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Entries"))

	if len(view.Entries) == 0 {
		b.WriteString("\n" + mutedStyle.Render("No entries"))
		return b.String()
	}

	for _, e := range view.Entries {
		label := e.CategoryOrOther()
		tag := tagStyle(g.meta.Lookup(label).Color).Render(label)

		amount := "+" + currencyutils.FormatYen(e.Amount)
		amountStyle := incomeStyle
		if e.IsExpense() {
			amount = "-" + currencyutils.FormatYen(e.Amount)
			amountStyle = expenseStyle
		}

		fmt.Fprintf(&b, "\n%s %s %s %s %s",
			mutedStyle.Render(fmt.Sprintf("#%d", e.ID)), e.Date, tag, e.Memo,
			amountStyle.Render(amount))
	}
	return b.String()
}

// Advice renders the advice panel.
func (g *Generator) Advice(view dashboard.View) string {
	lines := []string{titleStyle.Render("Advice")}
	if len(view.Advice) == 0 {
		lines = append(lines, mutedStyle.Render("Nothing recorded yet"))
	}
	lines = append(lines, models.AdviceMessages(view.Advice)...)
	return advicePanelStyle.Render(strings.Join(lines, "\n"))
}
