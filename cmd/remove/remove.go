// Package remove handles deleting an entry by ID
package remove

import (
	"fmt"
	"strconv"

	"fjacquet/kakeibo/cmd/root"

	"github.com/spf13/cobra"
)

// Result reports the outcome of a removal
type Result struct {
	ID      int64 `json:"id" yaml:"id"`
	Removed bool  `json:"removed" yaml:"removed"`
}

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete an entry by ID",
	Long:    `Delete an entry by ID. Removing an unknown ID changes nothing.`,
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func run(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	svc, state, err := root.LoadState(cmd)
	if err != nil {
		return err
	}

	removed, err := svc.DeleteEntry(cmd.Context(), state, id)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Removed entry #%d", id)
	if !removed {
		text = fmt.Sprintf("No entry with id %d", id)
	}
	return root.Print(cmd, text, Result{ID: id, Removed: removed})
}
