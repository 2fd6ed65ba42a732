// Command firecalc projects when savings reach financial independence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagFormat   string
	flagCurrency string
	flagLogLevel string
	flagLogJSON  bool
	flagDebug    bool
	flagSave     bool
)

var (
	prefs  = config.DefaultPreferences()
	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "firecalc",
	Short: "FIRE projection calculator",
	Long: "Project when your net worth reaches financial independence, compare savings scenarios\n" +
		"and explore how sensitive the timeline is to each assumption.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format (console, console-lite, csv, detailed-csv, html, json)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "ISO currency code used to display amounts")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log a breakdown of every projection")
	rootCmd.PersistentFlags().BoolVar(&flagSave, "save", false, "Write the report to a timestamped file instead of stdout")
}

// setup merges user preferences under the command-line flags and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadPreferences()
	if err != nil {
		// Preferences are optional; fall back to defaults.
		fmt.Fprintf(cmd.ErrOrStderr(), "  Ignoring %s: %v\n", config.PreferencesPath(), err)
	} else {
		prefs = loaded
	}

	if flagFormat == "" {
		flagFormat = prefs.Output.DefaultFormat
	}
	if flagCurrency == "" {
		flagCurrency = prefs.Currency
	}
	if flagLogLevel == "" {
		flagLogLevel = prefs.LogLevel
	}
	if flagDebug {
		flagLogLevel = "debug"
	}

	l, err := newLogger(cmd.ErrOrStderr(), flagLogLevel, flagLogJSON)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newLogger builds the logrus logger shared by all commands.
func newLogger(w io.Writer, level string, jsonOutput bool) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	if jsonOutput {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l, nil
}

func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Debug = flagDebug
	return engine
}

func outputOptions() output.Options {
	return output.Options{Currency: flagCurrency}
}

// writeComparison prints the comparison, or saves it when --save is set.
func writeComparison(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	if !flagSave {
		return output.WriteTo(cmd.OutOrStdout(), results, flagFormat, outputOptions())
	}

	dir := prefs.Output.Directory
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	name, err := output.GenerateReportFile(results, flagFormat, dir, outputOptions())
	if err != nil {
		return err
	}
	abs, _ := filepath.Abs(name)
	logger.WithField("file", abs).Info("report written")
	fmt.Fprintf(cmd.OutOrStdout(), "  Report saved to %s\n", name)
	return nil
}
