package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter describes a single-input sweep.
type SensitivityParameter struct {
	Name     string          `yaml:"name" json:"name"`
	MinValue decimal.Decimal `yaml:"min_value" json:"min_value"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"max_value"`
	Steps    int             `yaml:"steps" json:"steps"`
}

// Sweepable input names.
const (
	ParamMonthlySavings = "monthly_savings"
	ParamExpectedReturn = "expected_return"
	ParamWithdrawalRate = "withdrawal_rate"
	ParamAnnualExpenses = "annual_expenses"
)

// SensitivityParameterNames lists the inputs a sweep can vary.
var SensitivityParameterNames = []string{
	ParamAnnualExpenses,
	ParamExpectedReturn,
	ParamMonthlySavings,
	ParamWithdrawalRate,
}

// SensitivityResult is one step of a sweep.
type SensitivityResult struct {
	Value  decimal.Decimal `json:"value"`
	Inputs FIREInputs      `json:"inputs"`
	Result FIREResult      `json:"result"`
}

// SensitivityAnalysis is a complete sweep over one parameter.
type SensitivityAnalysis struct {
	BaseScenarioName string               `json:"base_scenario_name"`
	Parameter        SensitivityParameter `json:"parameter"`
	Results          []SensitivityResult  `json:"results"`
	// YearsSpread is the difference between the slowest and fastest step in years.
	YearsSpread decimal.Decimal `json:"years_spread"`
}
