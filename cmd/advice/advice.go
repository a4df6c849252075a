// Package advice handles showing the spending advice of a month
package advice

import (
	"fjacquet/kakeibo/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the advice command
var Cmd = &cobra.Command{
	Use:   "advice",
	Short: "Show spending advice for the selected month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, state, err := root.LoadState(cmd)
		if err != nil {
			return err
		}
		view := svc.View(state)
		return root.Print(cmd, root.Renderer().Advice(view), view.Advice)
	},
}
