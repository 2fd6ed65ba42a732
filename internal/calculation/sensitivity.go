package calculation

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SweepValues returns steps evenly spaced values from min to max inclusive
func SweepValues(param domain.SensitivityParameter) ([]decimal.Decimal, error) {
	if param.Steps < 2 {
		return nil, fmt.Errorf("parameter %s: steps must be at least 2, got %d", param.Name, param.Steps)
	}
	if param.MaxValue.LessThan(param.MinValue) {
		return nil, fmt.Errorf("parameter %s: max %s is below min %s", param.Name, param.MaxValue.String(), param.MinValue.String())
	}

	span := param.MaxValue.Sub(param.MinValue)
	last := decimal.NewFromInt(int64(param.Steps - 1))
	values := make([]decimal.Decimal, param.Steps)
	for i := 0; i < param.Steps; i++ {
		values[i] = param.MinValue.Add(span.Mul(decimal.NewFromInt(int64(i))).Div(last))
	}
	values[param.Steps-1] = param.MaxValue
	return values, nil
}

func applyParameter(base domain.FIREInputs, name string, value decimal.Decimal) (domain.FIREInputs, error) {
	in := base
	switch name {
	case domain.ParamMonthlySavings:
		in.MonthlySavingsContribution = value
	case domain.ParamExpectedReturn:
		in.ExpectedReturnPercent = value
	case domain.ParamWithdrawalRate:
		in.WithdrawalRatePercent = value
	case domain.ParamAnnualExpenses:
		in.AnnualExpenses = value
	default:
		return in, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownParameter, name, strings.Join(domain.SensitivityParameterNames, ", "))
	}
	return in, nil
}

// RunSensitivity projects base once per sweep value of param
func (ce *CalculationEngine) RunSensitivity(base domain.FIREInputs, param domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	if _, err := applyParameter(base, param.Name, decimal.Zero); err != nil {
		return nil, err
	}
	values, err := SweepValues(param)
	if err != nil {
		return nil, err
	}

	analysis := &domain.SensitivityAnalysis{
		Parameter: param,
		Results:   make([]domain.SensitivityResult, 0, len(values)),
	}
	minMonths, maxMonths := MaxProjectionMonths, 0
	for _, v := range values {
		in, _ := applyParameter(base, param.Name, v)
		res := ce.ComputeFIREProjection(in)
		analysis.Results = append(analysis.Results, domain.SensitivityResult{Value: v, Inputs: in, Result: res})
		if res.MonthsToFire < minMonths {
			minMonths = res.MonthsToFire
		}
		if res.MonthsToFire > maxMonths {
			maxMonths = res.MonthsToFire
		}
	}
	analysis.YearsSpread = decimal.NewFromInt(int64(maxMonths - minMonths)).Div(decimal.NewFromInt(12))

	ce.logger().Infof("sensitivity sweep over %s: %d steps, spread %s years", param.Name, len(values), analysis.YearsSpread.StringFixed(2))
	return analysis, nil
}

// RunScenarioSensitivity sweeps param for the named scenario of config
func (ce *CalculationEngine) RunScenarioSensitivity(config *domain.Configuration, scenarioName string, param domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	sc := config.FindScenario(scenarioName)
	if sc == nil {
		return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, scenarioName)
	}
	analysis, err := ce.RunSensitivity(sc.Inputs(config.NetWorth.NetWorth(), config.CurrentAge), param)
	if err != nil {
		return nil, err
	}
	analysis.BaseScenarioName = sc.Name
	return analysis, nil
}
