package main

import (
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <config.yaml>",
	Short: "Compare every scenario in a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	logger.WithField("scenarios", len(cfg.Scenarios)).Debug("configuration loaded")
	return compareConfiguration(cmd, cfg)
}

func compareConfiguration(cmd *cobra.Command, cfg *domain.Configuration) error {
	results, err := newEngine().RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return writeComparison(cmd, results)
}
