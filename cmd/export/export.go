// Package export handles writing entries to CSV
package export

import (
	"fmt"

	"fjacquet/kakeibo/cmd/root"
	csvexport "fjacquet/kakeibo/internal/export"
	"fjacquet/kakeibo/internal/models"

	"github.com/spf13/cobra"
)

var all bool

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export entries to CSV",
	Long: `Export the entries of the selected month to a CSV file, or to standard
output when no file is given. Use --all to export every entry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolVar(&all, "all", false, "Export every entry instead of the selected month")
}

func run(cmd *cobra.Command, args []string) error {
	svc, state, err := root.LoadState(cmd)
	if err != nil {
		return err
	}

	var entries []models.Entry
	if all {
		entries = state.Ledger.Entries()
	} else {
		entries = svc.View(state).Entries
	}

	codec := csvexport.NewCSV(root.AppContainer.GetConfig().CSVDelimiter(), root.Log)
	if len(args) == 0 {
		return codec.Write(cmd.OutOrStdout(), entries)
	}

	if err := codec.WriteFile(args[0], entries); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), args[0])
	return err
}
