// Package classify handles category suggestion and the keyword groups file
package classify

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/kakeibo/cmd/root"
	"fjacquet/kakeibo/internal/categorizer"
	"fjacquet/kakeibo/internal/models"

	"github.com/spf13/cobra"
)

var (
	initFile   bool
	listLabels bool
)

// Result is the structured form of a suggestion
type Result struct {
	Memo     string `json:"memo" yaml:"memo"`
	Category string `json:"category" yaml:"category"`
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Found    bool   `json:"found" yaml:"found"`
}

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify [memo]",
	Short: "Suggest a category for a memo",
	Long: `Suggest a category for a memo using the keyword groups of categories.yaml,
or the built-in groups when the file does not exist. Use --init to write the
built-in groups to categories.yaml so they can be edited.`,
	Example: `  kakeibo classify "スーパーで買い物"
  kakeibo classify --list
  kakeibo classify --init`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolVar(&initFile, "init", false, "Write the built-in keyword groups to the categories file")
	Cmd.Flags().BoolVar(&listLabels, "list", false, "List the category labels in matching order")
}

func run(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return errors.New("application is not initialized")
	}

	switch {
	case initFile:
		groups := categorizer.DefaultGroups()
		meta := root.AppContainer.GetCategoryMeta()
		for i := range groups {
			groups[i].Color = meta.Lookup(groups[i].Name).Color
		}
		store := root.AppContainer.GetCategoryStore()
		if err := store.SaveCategories(groups); err != nil {
			return err
		}
		return root.Print(cmd, fmt.Sprintf("Wrote %d keyword groups to %s", len(groups), store.CategoriesFile), groups)

	case listLabels:
		labels := root.AppContainer.GetClassifier().Labels()
		return root.Print(cmd, strings.Join(labels, "\n"), labels)
	}

	if len(args) == 0 {
		return errors.New("a memo is required unless --init or --list is given")
	}

	suggestion := root.AppContainer.GetTracker().Suggest(cmd.Context(), args[0])
	result := Result{Memo: args[0], Category: suggestion.Label, Strategy: suggestion.Strategy, Found: suggestion.Found}

	text := fmt.Sprintf("%s (%s)", suggestion.Label, suggestion.Strategy)
	if !suggestion.Found {
		result.Category = models.CategoryOther
		text = fmt.Sprintf("%s (no match)", models.CategoryOther)
	}
	return root.Print(cmd, text, result)
}
