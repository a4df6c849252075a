// Package summary handles the monthly totals and category breakdown
package summary

import (
	"fjacquet/kakeibo/cmd/root"
	"fjacquet/kakeibo/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Report is the structured form of the summary command
type Report struct {
	Month   string                `json:"month" yaml:"month"`
	Summary models.MonthlySummary `json:"summary" yaml:"summary"`
	Budget  models.BudgetStatus   `json:"budget" yaml:"budget"`
}

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expense, balance and the category breakdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, state, err := root.LoadState(cmd)
		if err != nil {
			return err
		}
		view := svc.View(state)
		r := root.Renderer()

		text := lipgloss.JoinVertical(lipgloss.Left, r.Summary(view), "", r.Categories(view))
		return root.Print(cmd, text, Report{Month: view.Month, Summary: view.Summary, Budget: view.Budget})
	},
}
