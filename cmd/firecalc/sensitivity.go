package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagSensScenario string
	flagSensParam    string
	flagSensMin      string
	flagSensMax      string
	flagSensSteps    int
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity <config.yaml>",
	Short: "Sweep one input of a scenario and show how the timeline moves",
	Example: "  firecalc sensitivity config.yaml --param expected_return --min 4 --max 10 --steps 7\n" +
		"  firecalc sensitivity config.yaml --scenario \"Lean FIRE\" --param monthly_savings --min 1000 --max 4000",
	Args: cobra.ExactArgs(1),
	RunE: runSensitivity,
}

func init() {
	f := sensitivityCmd.Flags()
	f.StringVar(&flagSensScenario, "scenario", "", "Scenario to vary (defaults to the first)")
	f.StringVar(&flagSensParam, "param", domain.ParamMonthlySavings, "Input to sweep: "+strings.Join(domain.SensitivityParameterNames, ", "))
	f.StringVar(&flagSensMin, "min", "", "Lowest value of the sweep (required)")
	f.StringVar(&flagSensMax, "max", "", "Highest value of the sweep (required)")
	f.IntVar(&flagSensSteps, "steps", 5, "Number of values, including both ends")
	_ = sensitivityCmd.MarkFlagRequired("min")
	_ = sensitivityCmd.MarkFlagRequired("max")
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	param := domain.SensitivityParameter{Name: flagSensParam, Steps: flagSensSteps}
	if param.MinValue, err = parseDecimal("min", flagSensMin); err != nil {
		return err
	}
	if param.MaxValue, err = parseDecimal("max", flagSensMax); err != nil {
		return err
	}

	name := flagSensScenario
	if name == "" {
		name = cfg.Scenarios[0].Name
	}

	analysis, err := newEngine().RunScenarioSensitivity(cfg, name, param)
	if err != nil {
		return fmt.Errorf("sensitivity analysis failed: %w", err)
	}
	return output.WriteSensitivityTo(cmd.OutOrStdout(), analysis, flagFormat, outputOptions())
}
