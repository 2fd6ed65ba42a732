package config

import (
	"fmt"
	"os"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input bounds enforced before anything reaches the projection engine. The engine
// itself accepts any value; these only reject inputs that are almost certainly typos.
var (
	maxWithdrawalRatePercent = decimal.NewFromInt(20)
	minExpectedReturnPercent = decimal.NewFromInt(-50)
	maxExpectedReturnPercent = decimal.NewFromInt(50)
)

const maxCurrentAge = 120

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateNetWorth(&config.NetWorth); err != nil {
		return fmt.Errorf("net worth validation failed: %w", err)
	}

	if config.CurrentAge != nil && (*config.CurrentAge < 0 || *config.CurrentAge > maxCurrentAge) {
		return fmt.Errorf("current age must be between 0 and %d", maxCurrentAge)
	}
	if config.FIREGoal.IsNegative() {
		return fmt.Errorf("FIRE goal cannot be negative")
	}

	// Validate scenarios
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.ValidateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateNetWorth validates the asset and liability lists
func (ip *InputParser) validateNetWorth(snapshot *domain.NetWorthSnapshot) error {
	for _, a := range snapshot.Assets {
		if a.Name == "" {
			return fmt.Errorf("asset name is required")
		}
		if a.Value.IsNegative() {
			return fmt.Errorf("asset %s value cannot be negative", a.Name)
		}
	}
	for _, l := range snapshot.Liabilities {
		if l.Name == "" {
			return fmt.Errorf("liability name is required")
		}
		if l.Value.IsNegative() {
			return fmt.Errorf("liability %s value cannot be negative", l.Name)
		}
	}
	return nil
}

// ValidateScenario validates a single scenario
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.AnnualExpenses.IsNegative() {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	if !scenario.WithdrawalRatePercent.IsPositive() || scenario.WithdrawalRatePercent.GreaterThan(maxWithdrawalRatePercent) {
		return fmt.Errorf("withdrawal rate must be greater than 0%% and at most %s%%", maxWithdrawalRatePercent.String())
	}
	if scenario.ExpectedReturnPercent.LessThan(minExpectedReturnPercent) || scenario.ExpectedReturnPercent.GreaterThan(maxExpectedReturnPercent) {
		return fmt.Errorf("expected return must be between %s%% and %s%%", minExpectedReturnPercent.String(), maxExpectedReturnPercent.String())
	}
	if scenario.MonthlySavingsContribution.IsNegative() {
		return fmt.Errorf("monthly savings contribution cannot be negative")
	}
	return nil
}

// SaveToFile writes a configuration as YAML
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	age := 30
	return &domain.Configuration{
		NetWorth: domain.NetWorthSnapshot{
			Assets: []domain.Holding{
				{Name: "Brokerage", Type: "investment", Value: decimal.NewFromInt(85000)},
				{Name: "401k", Type: "retirement", Value: decimal.NewFromInt(60000)},
				{Name: "Emergency fund", Type: "cash", Value: decimal.NewFromInt(20000)},
			},
			Liabilities: []domain.Holding{
				{Name: "Student loan", Type: "student_loan", Value: decimal.NewFromInt(15000)},
			},
		},
		CurrentAge: &age,
		FIREGoal:   decimal.NewFromInt(1000000),
		Scenarios: []domain.Scenario{
			{
				Name:                       "Baseline",
				AnnualExpenses:             decimal.NewFromInt(50000),
				WithdrawalRatePercent:      decimal.NewFromInt(4),
				ExpectedReturnPercent:      decimal.NewFromInt(7),
				MonthlySavingsContribution: decimal.NewFromInt(2000),
			},
			{
				Name:                       "Lean FIRE",
				AnnualExpenses:             decimal.NewFromInt(35000),
				WithdrawalRatePercent:      decimal.NewFromInt(4),
				ExpectedReturnPercent:      decimal.NewFromInt(7),
				MonthlySavingsContribution: decimal.NewFromInt(2500),
			},
			{
				Name:                       "Conservative",
				AnnualExpenses:             decimal.NewFromInt(50000),
				WithdrawalRatePercent:      decimal.NewFromFloat(3.25),
				ExpectedReturnPercent:      decimal.NewFromInt(5),
				MonthlySavingsContribution: decimal.NewFromInt(2000),
			},
		},
	}
}
