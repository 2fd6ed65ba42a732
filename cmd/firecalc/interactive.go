package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter projection inputs in a form",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	pf := projectFlags
	pf.AnnualExpenses = "40000"
	age := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Annual expenses").
				Description("What you expect to spend per year once retired.").
				Value(&pf.AnnualExpenses).
				Validate(nonNegativeDecimal),
			huh.NewInput().
				Title("Withdrawal rate (%)").
				Description("Share of the portfolio withdrawn each year, e.g. 4.").
				Value(&pf.WithdrawalRate).
				Validate(positiveDecimal),
			huh.NewInput().
				Title("Expected annual return (%)").
				Value(&pf.ExpectedReturn).
				Validate(anyDecimal),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly savings").
				Value(&pf.MonthlySavings).
				Validate(nonNegativeDecimal),
			huh.NewInput().
				Title("Current net worth").
				Description("Assets minus liabilities; may be negative.").
				Value(&pf.NetWorth).
				Validate(anyDecimal),
			huh.NewInput().
				Title("Current age").
				Description("Optional.").
				Value(&age).
				Validate(optionalAge),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("input form: %w", err)
	}

	pf.Age = -1
	if a := strings.TrimSpace(age); a != "" {
		pf.Age, _ = strconv.Atoi(a)
	}

	cfg, err := pf.configuration()
	if err != nil {
		return err
	}
	return compareConfiguration(cmd, cfg)
}

func anyDecimal(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func nonNegativeDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func positiveDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func optionalAge(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 120 {
		return fmt.Errorf("enter a whole number between 0 and 120")
	}
	return nil
}
