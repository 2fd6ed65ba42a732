package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// projectionFlags holds the raw single-projection inputs as typed on the command line.
type projectionFlags struct {
	Name           string
	AnnualExpenses string
	WithdrawalRate string
	ExpectedReturn string
	MonthlySavings string
	NetWorth       string
	Age            int
}

var projectFlags = projectionFlags{
	Name:           "Projection",
	WithdrawalRate: "4",
	ExpectedReturn: "7",
	MonthlySavings: "0",
	NetWorth:       "0",
	Age:            -1,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a single FIRE projection from flags",
	Example: "  firecalc project --expenses 40000 --savings 2500 --net-worth 120000\n" +
		"  firecalc project --expenses 60000 --withdrawal-rate 3.5 --return 6 --age 35 -f json",
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	f := projectCmd.Flags()
	f.StringVar(&projectFlags.AnnualExpenses, "expenses", "", "Annual expenses in retirement (required)")
	f.StringVar(&projectFlags.WithdrawalRate, "withdrawal-rate", projectFlags.WithdrawalRate, "Safe withdrawal rate in percent")
	f.StringVar(&projectFlags.ExpectedReturn, "return", projectFlags.ExpectedReturn, "Expected annual return in percent")
	f.StringVar(&projectFlags.MonthlySavings, "savings", projectFlags.MonthlySavings, "Monthly savings contribution")
	f.StringVar(&projectFlags.NetWorth, "net-worth", projectFlags.NetWorth, "Current net worth (may be negative)")
	f.IntVar(&projectFlags.Age, "age", projectFlags.Age, "Current age, used to report the age at FIRE")
	_ = projectCmd.MarkFlagRequired("expenses")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	cfg, err := projectFlags.configuration()
	if err != nil {
		return err
	}
	return compareConfiguration(cmd, cfg)
}

// configuration turns the flags into a validated single-scenario configuration.
func (pf projectionFlags) configuration() (*domain.Configuration, error) {
	var (
		scenario = domain.Scenario{Name: pf.Name}
		netWorth decimal.Decimal
		err      error
	)
	if scenario.AnnualExpenses, err = parseDecimal("expenses", pf.AnnualExpenses); err != nil {
		return nil, err
	}
	if scenario.WithdrawalRatePercent, err = parseDecimal("withdrawal-rate", pf.WithdrawalRate); err != nil {
		return nil, err
	}
	if scenario.ExpectedReturnPercent, err = parseDecimal("return", pf.ExpectedReturn); err != nil {
		return nil, err
	}
	if scenario.MonthlySavingsContribution, err = parseDecimal("savings", pf.MonthlySavings); err != nil {
		return nil, err
	}
	if netWorth, err = parseDecimal("net-worth", pf.NetWorth); err != nil {
		return nil, err
	}

	cfg := &domain.Configuration{
		NetWorth:  domain.NetWorthSnapshot{Override: &netWorth},
		Scenarios: []domain.Scenario{scenario},
	}
	if pf.Age >= 0 {
		age := pf.Age
		cfg.CurrentAge = &age
	}

	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("invalid projection: %w", err)
	}
	return cfg, nil
}

func parseDecimal(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return d, nil
}
