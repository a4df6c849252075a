// Package budget handles showing and setting the monthly budget
package budget

import (
	"fjacquet/kakeibo/cmd/root"

	"github.com/spf13/cobra"
)

var clearBudget bool

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget [amount]",
	Short: "Show or set the monthly budget",
	Long: `Show the budget status of the selected month, or set the budget.
The budget applies to every month. Setting 0 or using --clear removes it.`,
	Example: `  kakeibo budget
  kakeibo budget 45000
  kakeibo budget --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolVar(&clearBudget, "clear", false, "Remove the budget")
}

func run(cmd *cobra.Command, args []string) error {
	svc, state, err := root.LoadState(cmd)
	if err != nil {
		return err
	}

	switch {
	case clearBudget:
		if _, err := svc.SetBudget(cmd.Context(), state, ""); err != nil {
			return err
		}
	case len(args) == 1:
		if _, err := svc.SetBudget(cmd.Context(), state, args[0]); err != nil {
			return err
		}
	}

	status := svc.View(state).Budget
	return root.Print(cmd, root.Renderer().BudgetLine(status), status)
}
