package main

import (
	"fmt"
	"os"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/spf13/cobra"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write an example scenario configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !flagInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	parser := config.NewInputParser()
	if err := parser.SaveToFile(parser.CreateExampleConfiguration(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Example configuration written to %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run `firecalc compare %s` to see the projections.\n", path)
	return nil
}
