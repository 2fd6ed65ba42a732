package calculation

import (
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions describes the modelling simplifications shared by every projection.
func DefaultAssumptions() []string {
	return []string{
		"Expected annual return is divided by 12 and compounded monthly",
		"Contributions are added at the end of each month",
		fmt.Sprintf("Projections stop after %d years", MaxProjectionMonths/12),
		"Nominal values: no inflation, taxes or fees are modelled",
	}
}

// generateAnalysis picks the fastest scenario and the one with the lowest required contribution
func (ce *CalculationEngine) generateAnalysis(scenarios []domain.ScenarioSummary) domain.FIREAnalysis {
	var analysis domain.FIREAnalysis
	fastestIdx, lowestIdx := -1, -1

	for i, sc := range scenarios {
		res := sc.Result
		if res.TargetUnreachable {
			analysis.UnreachableScenarios = append(analysis.UnreachableScenarios, sc.Name)
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s: withdrawal rate must be positive for a FIRE number to exist", sc.Name))
			continue
		}
		if !res.ReachedWithinHorizon {
			analysis.UnreachableScenarios = append(analysis.UnreachableScenarios, sc.Name)
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s: FIRE number not reached within %d years; saving %s per month would get there",
					sc.Name, MaxProjectionMonths/12, res.MonthlySavingsNeeded.StringFixed(2)))
			continue
		}

		if fastestIdx < 0 || res.MonthsToFire < scenarios[fastestIdx].Result.MonthsToFire {
			fastestIdx = i
		}
		if lowestIdx < 0 || res.MonthlySavingsNeeded.LessThan(scenarios[lowestIdx].Result.MonthlySavingsNeeded) {
			lowestIdx = i
		}
	}

	if fastestIdx >= 0 {
		fastest := scenarios[fastestIdx]
		analysis.FastestScenario = fastest.Name
		analysis.FastestMonths = fastest.Result.MonthsToFire
		if fastest.Result.AlreadyThere() {
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s: current net worth already covers the FIRE number", fastest.Name))
		} else {
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s reaches FIRE soonest, in %s", fastest.Name, dateutil.DescribeMonths(fastest.Result.MonthsToFire)))
		}
	}
	if lowestIdx >= 0 {
		analysis.LowestRequiredScenario = scenarios[lowestIdx].Name
		analysis.LowestRequiredContribution = scenarios[lowestIdx].Result.MonthlySavingsNeeded
	} else {
		analysis.LowestRequiredContribution = decimal.Zero
	}

	return analysis
}
