package calculation

import (
	"github.com/shopspring/decimal"

	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
)

const (
	// MaxProjectionMonths caps the forward simulation at 100 years so it always terminates.
	MaxProjectionMonths = 100 * 12

	// balancePrecision bounds the digits carried between simulated months.
	balancePrecision = 10
	// growthPrecision bounds the compound factor used by the annuity inversion.
	growthPrecision = 20
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// FIRENumber returns annualExpenses / (withdrawalRatePercent / 100).
// A non-positive withdrawal rate has no finite target; ok is false in that case.
func FIRENumber(annualExpenses, withdrawalRatePercent decimal.Decimal) (target decimal.Decimal, ok bool) {
	if !withdrawalRatePercent.IsPositive() {
		return decimal.Zero, false
	}
	return annualExpenses.Mul(hundred).Div(withdrawalRatePercent), true
}

// Simulation is the outcome of the month-by-month projection.
type Simulation struct {
	Months  int
	Balance decimal.Decimal
	Reached bool
}

// SimulateMonthsToTarget grows current by monthlyReturn and adds contribution once per month
// until the balance reaches target or MaxProjectionMonths elapse.
// A nil target is never reached and runs to the ceiling.
func SimulateMonthsToTarget(current decimal.Decimal, target *decimal.Decimal, monthlyReturn, contribution decimal.Decimal) Simulation {
	if target != nil && current.GreaterThanOrEqual(*target) {
		return Simulation{Months: 0, Balance: current, Reached: true}
	}

	growth := one.Add(monthlyReturn)
	balance := current
	months := 0
	for months < MaxProjectionMonths {
		balance = balance.Mul(growth).Add(contribution).Round(balancePrecision)
		months++
		if target != nil && balance.GreaterThanOrEqual(*target) {
			return Simulation{Months: months, Balance: balance, Reached: true}
		}
	}
	return Simulation{Months: months, Balance: balance, Reached: false}
}

// RequiredMonthlyContribution solves the future value of an annuity with initial principal
// for the level monthly payment that turns current into target in exactly months periods.
// The result is never negative.
func RequiredMonthlyContribution(target, current, monthlyReturn decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(months))

	// (1+r)^n - 1 over r tends to n as r goes to 0
	if monthlyReturn.IsZero() {
		return fdec.NonNegative(target.Sub(current).Div(n))
	}

	growth := one.Add(monthlyReturn).Pow(n).Round(growthPrecision)
	annuityFactor := growth.Sub(one).Div(monthlyReturn)
	if annuityFactor.IsZero() {
		// contributions cannot move the future value at all
		return decimal.Zero
	}
	needed := target.Sub(current.Mul(growth)).Div(annuityFactor)
	return fdec.NonNegative(needed)
}

// ProgressPercentage returns current as a percentage of target, bounded to [0, 100].
// Meeting or exceeding the target is always 100.
func ProgressPercentage(current, target decimal.Decimal) decimal.Decimal {
	if current.GreaterThanOrEqual(target) {
		return hundred
	}
	if !target.IsPositive() {
		return decimal.Zero
	}
	return fdec.Clamp(current.Div(target).Mul(hundred), decimal.Zero, hundred)
}
