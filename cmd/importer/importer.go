// Package importer handles reading entries from CSV into the ledger
package importer

import (
	"fmt"

	"fjacquet/kakeibo/cmd/root"
	"fjacquet/kakeibo/internal/export"
	"fjacquet/kakeibo/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from CSV",
	Long: `Import entries from a CSV file with a header row of
id,date,type,amount,memo,category. Every row gets a new ID, rows identical to an
existing entry are skipped, and nothing is imported when any row is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidPath(args[0]); err != nil {
		return err
	}

	svc, state, err := root.LoadState(cmd)
	if err != nil {
		return err
	}

	codec := export.NewCSV(root.AppContainer.GetConfig().CSVDelimiter(), root.Log)
	entries, err := codec.ReadFile(args[0])
	if err != nil {
		return err
	}

	result, err := svc.Import(cmd.Context(), state, entries)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Imported %d entries, skipped %d duplicates", result.Added, result.Skipped)
	return root.Print(cmd, text, result)
}
