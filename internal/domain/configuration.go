package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFIREGoal is the dashboard goal used when the configuration leaves fire_goal unset.
var DefaultFIREGoal = decimal.NewFromInt(1000000)

// Scenario is one named set of projection assumptions. Net worth and age are shared
// across scenarios and come from the enclosing Configuration.
type Scenario struct {
	Name                       string          `yaml:"name" json:"name"`
	AnnualExpenses             decimal.Decimal `yaml:"annual_expenses" json:"annual_expenses"`
	WithdrawalRatePercent      decimal.Decimal `yaml:"withdrawal_rate_percent" json:"withdrawal_rate_percent"`
	ExpectedReturnPercent      decimal.Decimal `yaml:"expected_return_percent" json:"expected_return_percent"`
	MonthlySavingsContribution decimal.Decimal `yaml:"monthly_savings_contribution" json:"monthly_savings_contribution"`
}

// Inputs combines the scenario with the shared net worth and age.
func (s *Scenario) Inputs(netWorth decimal.Decimal, currentAge *int) FIREInputs {
	return FIREInputs{
		AnnualExpenses:             s.AnnualExpenses,
		WithdrawalRatePercent:      s.WithdrawalRatePercent,
		ExpectedReturnPercent:      s.ExpectedReturnPercent,
		MonthlySavingsContribution: s.MonthlySavingsContribution,
		CurrentNetWorth:            netWorth,
		CurrentAge:                 currentAge,
	}
}

// Configuration is the top level of a scenario input file.
type Configuration struct {
	NetWorth   NetWorthSnapshot `yaml:"net_worth" json:"net_worth"`
	CurrentAge *int             `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	FIREGoal   decimal.Decimal  `yaml:"fire_goal,omitempty" json:"fire_goal,omitempty"`
	Scenarios  []Scenario       `yaml:"scenarios" json:"scenarios"`
}

// Goal returns the configured FIRE goal, falling back to DefaultFIREGoal.
func (c *Configuration) Goal() decimal.Decimal {
	if c.FIREGoal.IsZero() {
		return DefaultFIREGoal
	}
	return c.FIREGoal
}

// FindScenario returns the scenario with the given name, or nil.
func (c *Configuration) FindScenario(name string) *Scenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}

// ScenarioSummary pairs a scenario's inputs with its projection.
type ScenarioSummary struct {
	Name   string     `json:"name"`
	Inputs FIREInputs `json:"inputs"`
	Result FIREResult `json:"result"`
}

// ScenarioComparison is the outcome of running every scenario in a configuration.
type ScenarioComparison struct {
	GeneratedAt      time.Time         `json:"generated_at"`
	CurrentNetWorth  decimal.Decimal   `json:"current_net_worth"`
	TotalAssets      decimal.Decimal   `json:"total_assets"`
	TotalLiabilities decimal.Decimal   `json:"total_liabilities"`
	FIREGoal         decimal.Decimal   `json:"fire_goal"`
	GoalProgress     decimal.Decimal   `json:"goal_progress"`
	Scenarios        []ScenarioSummary `json:"scenarios"`
	Analysis         FIREAnalysis      `json:"analysis"`
	Assumptions      []string          `json:"assumptions"`
}

// FIREAnalysis names the standout scenarios of a comparison.
type FIREAnalysis struct {
	FastestScenario            string          `json:"fastest_scenario"`
	FastestMonths              int             `json:"fastest_months"`
	LowestRequiredScenario     string          `json:"lowest_required_scenario"`
	LowestRequiredContribution decimal.Decimal `json:"lowest_required_contribution"`
	UnreachableScenarios       []string        `json:"unreachable_scenarios,omitempty"`
	Recommendations            []string        `json:"recommendations"`
}
