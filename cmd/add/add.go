// Package add handles recording a new income or expense entry
package add

import (
	"fmt"
	"time"

	"fjacquet/kakeibo/cmd/root"
	"fjacquet/kakeibo/internal/currencyutils"
	"fjacquet/kakeibo/internal/dateutils"
	"fjacquet/kakeibo/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	date      string
	amount    string
	memo      string
	entryType string
	category  string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense entry",
	Long: `Record an income or expense entry. When no category is given, one is
suggested from the memo keywords, and by Gemini when AI is enabled.`,
	Example: `  kakeibo add --amount 1200 --memo "コンビニ弁当"
  kakeibo add -a 250000 -t income -n 給料 -d 2024-05-25`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Entry date as YYYY-MM-DD (default: today)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount in yen, a positive whole number")
	Cmd.Flags().StringVarP(&memo, "memo", "n", "", "Free text memo")
	Cmd.Flags().StringVarP(&entryType, "type", "t", "expense", "Entry type: income or expense")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category label (default: suggested from memo)")
	_ = Cmd.MarkFlagRequired("amount")
}

func run(cmd *cobra.Command, _ []string) error {
	svc, state, err := root.LoadState(cmd)
	if err != nil {
		return err
	}

	entryDate := date
	if entryDate == "" {
		entryDate = dateutils.TodayISO(time.Now())
	}

	entry, err := svc.AddEntry(cmd.Context(), state, tracker.AddRequest{
		Date:     entryDate,
		Amount:   amount,
		Memo:     memo,
		Type:     entryType,
		Category: category,
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Added #%d %s %s %s %s",
		entry.ID, entry.Date, entry.CategoryOrOther(), entry.Memo, currencyutils.FormatYen(entry.Amount))
	return root.Print(cmd, text, entry)
}
