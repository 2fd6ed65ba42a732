package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs FIRE projections. It holds no per-call state, so one engine can
// serve any number of projections.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
	// Now supplies the date projected FIRE dates are measured from.
	Now func() time.Time
}

// NewCalculationEngine creates a new calculation engine using the wall clock and a no-op logger
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

func (ce *CalculationEngine) now() time.Time {
	if ce.Now == nil {
		return time.Now()
	}
	return ce.Now()
}

// ComputeFIREProjection computes the FIRE target, time to reach it, the level monthly
// contribution matching that timeline, progress and the projected date.
// It never fails: degenerate inputs resolve to defined values.
func (ce *CalculationEngine) ComputeFIREProjection(in domain.FIREInputs) domain.FIREResult {
	log := ce.logger()

	target, reachable := FIRENumber(in.AnnualExpenses, in.WithdrawalRatePercent)
	monthlyReturn := fdec.MonthlyRate(in.ExpectedReturnPercent)

	var sim Simulation
	if reachable {
		sim = SimulateMonthsToTarget(in.CurrentNetWorth, &target, monthlyReturn, in.MonthlySavingsContribution)
	} else {
		log.Warnf("withdrawal rate %s%% is not positive; FIRE number is unbounded", in.WithdrawalRatePercent.String())
		sim = SimulateMonthsToTarget(in.CurrentNetWorth, nil, monthlyReturn, in.MonthlySavingsContribution)
	}
	if reachable && !sim.Reached {
		log.Warnf("target %s not reached within %d months (balance %s)", target.StringFixed(2), MaxProjectionMonths, sim.Balance.StringFixed(2))
	}

	result := domain.FIREResult{
		FIRENumber:           target,
		TargetUnreachable:    !reachable,
		MonthsToFire:         sim.Months,
		YearsToFire:          dateutil.MonthsToYears(sim.Months),
		ReachedWithinHorizon: reachable && sim.Reached,
		ProjectedBalance:     sim.Balance,
		ProjectedFireDate:    dateutil.AdvanceMonths(ce.now(), sim.Months),
	}

	if reachable {
		result.MonthlySavingsNeeded = RequiredMonthlyContribution(target, in.CurrentNetWorth, monthlyReturn, sim.Months)
		result.ProgressPercentage = ProgressPercentage(in.CurrentNetWorth, target)
	} else {
		result.MonthlySavingsNeeded = decimal.Zero
		result.ProgressPercentage = decimal.Zero
	}
	result.SavingsShortfall = fdec.NonNegative(result.MonthlySavingsNeeded.Sub(in.MonthlySavingsContribution))

	if in.CurrentAge != nil {
		age := *in.CurrentAge + dateutil.CeilYears(sim.Months)
		result.FIREAge = &age
	}

	if ce.Debug {
		log.Debugf("FIRE PROJECTION BREAKDOWN:")
		log.Debugf("  FIRE number:          %s (unreachable=%t)", target.StringFixed(2), !reachable)
		log.Debugf("  Monthly return:       %s", monthlyReturn.String())
		log.Debugf("  Months simulated:     %d (reached=%t)", sim.Months, sim.Reached)
		log.Debugf("  Projected balance:    %s", sim.Balance.StringFixed(2))
		log.Debugf("  Savings needed/month: %s", result.MonthlySavingsNeeded.StringFixed(2))
		log.Debugf("  Progress:             %s%%", result.ProgressPercentage.StringFixed(2))
	}

	return result
}

// ComputeFIREProjection runs a projection with a default engine.
func ComputeFIREProjection(in domain.FIREInputs) domain.FIREResult {
	return NewCalculationEngine().ComputeFIREProjection(in)
}

// RunScenario projects a single scenario against the configuration's net worth and age
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	inputs := scenario.Inputs(config.NetWorth.NetWorth(), config.CurrentAge)
	ce.logger().Debugf("running scenario %q", scenario.Name)

	return &domain.ScenarioSummary{
		Name:   scenario.Name,
		Inputs: inputs,
		Result: ce.ComputeFIREProjection(inputs),
	}, nil
}

// RunScenarios runs all scenarios and returns a comparison
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))

	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, config, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		scenarios[i] = *summary
	}

	netWorth := config.NetWorth.NetWorth()
	goal := config.Goal()

	comparison := &domain.ScenarioComparison{
		GeneratedAt:      ce.now(),
		CurrentNetWorth:  netWorth,
		TotalAssets:      config.NetWorth.TotalAssets(),
		TotalLiabilities: config.NetWorth.TotalLiabilities(),
		FIREGoal:         goal,
		GoalProgress:     ProgressPercentage(netWorth, goal),
		Scenarios:        scenarios,
		Assumptions:      DefaultAssumptions(),
	}
	comparison.Analysis = ce.generateAnalysis(scenarios)

	return comparison, nil
}
