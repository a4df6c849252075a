// Package list handles listing the entries of a month
package list

import (
	"fjacquet/kakeibo/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the entries of the selected month",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, state, err := root.LoadState(cmd)
		if err != nil {
			return err
		}
		view := svc.View(state)
		return root.Print(cmd, root.Renderer().Entries(view), view.Entries)
	},
}
