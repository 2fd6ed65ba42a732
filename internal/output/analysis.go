package output

import (
	"sort"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	MonthsToFire int
	// MonthsSaved is how much sooner it reaches FIRE than the slowest reachable scenario.
	MonthsSaved int
}

// RankedScenario is a scenario with its position when ordered by time to FIRE.
type RankedScenario struct {
	Rank int
	domain.ScenarioSummary
}

func reachable(r domain.FIREResult) bool {
	return !r.TargetUnreachable && r.ReachedWithinHorizon
}

// RankScenarios orders scenarios by months to FIRE, name breaking ties. Scenarios that
// never reach their target are ranked last.
func RankScenarios(results *domain.ScenarioComparison) []RankedScenario {
	ranked := make([]RankedScenario, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		ranked = append(ranked, RankedScenario{ScenarioSummary: sc})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Result, ranked[j].Result
		if reachable(a) != reachable(b) {
			return reachable(a)
		}
		if a.MonthsToFire != b.MonthsToFire {
			return a.MonthsToFire < b.MonthsToFire
		}
		return ranked[i].Name < ranked[j].Name
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// AnalyzeScenarios determines the scenario reaching FIRE soonest.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	ranked := RankScenarios(results)
	if len(ranked) == 0 || !reachable(ranked[0].Result) {
		return Recommendation{}
	}
	best := ranked[0]
	slowest := best
	for _, r := range ranked {
		if reachable(r.Result) {
			slowest = r
		}
	}
	return Recommendation{
		ScenarioName: best.Name,
		MonthsToFire: best.Result.MonthsToFire,
		MonthsSaved:  slowest.Result.MonthsToFire - best.Result.MonthsToFire,
	}
}

// assumptionsFor returns the comparison's assumptions, falling back to the engine defaults.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return calculation.DefaultAssumptions()
}
