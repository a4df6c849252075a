package main

import (
	"fmt"
	"os"

	"fjacquet/kakeibo/cmd/add"
	"fjacquet/kakeibo/cmd/advice"
	"fjacquet/kakeibo/cmd/budget"
	"fjacquet/kakeibo/cmd/classify"
	"fjacquet/kakeibo/cmd/export"
	"fjacquet/kakeibo/cmd/importer"
	"fjacquet/kakeibo/cmd/list"
	"fjacquet/kakeibo/cmd/remove"
	"fjacquet/kakeibo/cmd/root"
	"fjacquet/kakeibo/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(advice.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
