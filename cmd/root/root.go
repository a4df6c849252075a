// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"sync"

	"fjacquet/kakeibo/internal/config"
	"fjacquet/kakeibo/internal/container"
	"fjacquet/kakeibo/internal/dashboard"
	"fjacquet/kakeibo/internal/dateutils"
	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
	"fjacquet/kakeibo/internal/render"
	"fjacquet/kakeibo/internal/tracker"
	"fjacquet/kakeibo/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	ConfigFile string
	Month      string
	Format     string
	DataDir    string
	Backend    string
	LogLevel   string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("warn", "text")

	// AppContainer holds the wired application for the running command
	AppContainer *container.Container

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "kakeibo",
		Short: "A household account book for the terminal.",
		Long: `kakeibo records income and expenses, suggests categories from memos,
summarizes each month against a budget and gives simple spending advice.
Running it without a subcommand shows the dashboard of the selected month.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              showDashboard,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close application resources")
			}
			AppContainer = nil
		},
	}
)

// Init initializes the root command and its persistent flags.
// It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: $HOME/.kakeibo/config.yaml)")
		flags.StringVarP(&SharedFlags.Month, "month", "m", "", "Month to show as YYYY-MM (default: current month)")
		flags.StringVarP(&SharedFlags.Format, "format", "f", "text", "Output format: text, json or yaml")
		flags.StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory holding the ledger data")
		flags.StringVar(&SharedFlags.Backend, "backend", "", "Storage backend: file, sqlite or memory")
		flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	})
}

// setup loads the configuration and wires the application before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.DataDir != "" {
		cfg.Data.Directory = SharedFlags.DataDir
	}
	if SharedFlags.Backend != "" {
		cfg.Data.Backend = SharedFlags.Backend
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	if err := validation.IsValidOutputFormat(SharedFlags.Format); err != nil {
		return err
	}
	if SharedFlags.Month != "" {
		if _, err := dateutils.ParseMonthKey(SharedFlags.Month); err != nil {
			return fmt.Errorf("invalid --month %q: %w", SharedFlags.Month, err)
		}
	}

	if AppContainer != nil {
		_ = AppContainer.Close()
	}
	c, err := container.NewContainer(cmd.Context(), cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// LoadState returns the ledger service and the state of the selected month.
func LoadState(cmd *cobra.Command) (*tracker.Service, *dashboard.State, error) {
	if AppContainer == nil {
		return nil, nil, errors.New("application is not initialized")
	}
	svc := AppContainer.GetTracker()
	state, err := svc.Load(cmd.Context(), SharedFlags.Month)
	if err != nil {
		return nil, nil, err
	}
	return svc, state, nil
}

// Renderer returns a view renderer bound to the application logger and category colors
func Renderer() *render.Generator {
	var meta models.CategoryMetaTable
	if AppContainer != nil {
		meta = AppContainer.GetCategoryMeta()
	}
	return render.NewGenerator(Log, meta)
}

// IsText reports whether the text output format is selected
func IsText() bool {
	return SharedFlags.Format == "" || SharedFlags.Format == render.FormatText
}

// Print writes text output, or v as a structured document in json/yaml mode.
func Print(cmd *cobra.Command, text string, v interface{}) error {
	if IsText() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}
	out, err := Renderer().Structured(v, SharedFlags.Format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func showDashboard(cmd *cobra.Command, _ []string) error {
	svc, state, err := LoadState(cmd)
	if err != nil {
		return err
	}
	out, err := Renderer().GenerateReport(svc.View(state), SharedFlags.Format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
