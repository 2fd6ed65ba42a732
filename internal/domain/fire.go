package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FIREInputs holds the five projection inputs plus the optional age used for the FIRE age display.
type FIREInputs struct {
	AnnualExpenses             decimal.Decimal `yaml:"annual_expenses" json:"annual_expenses"`
	WithdrawalRatePercent      decimal.Decimal `yaml:"withdrawal_rate_percent" json:"withdrawal_rate_percent"`
	ExpectedReturnPercent      decimal.Decimal `yaml:"expected_return_percent" json:"expected_return_percent"`
	MonthlySavingsContribution decimal.Decimal `yaml:"monthly_savings_contribution" json:"monthly_savings_contribution"`
	CurrentNetWorth            decimal.Decimal `yaml:"current_net_worth" json:"current_net_worth"`
	CurrentAge                 *int            `yaml:"current_age,omitempty" json:"current_age,omitempty"`
}

// FIREResult is the output of a single projection. It is recomputed on every call and never persisted.
type FIREResult struct {
	// FIRENumber is meaningless when TargetUnreachable is set (the target is +Inf).
	FIRENumber           decimal.Decimal `json:"fire_number"`
	TargetUnreachable    bool            `json:"target_unreachable"`
	YearsToFire          decimal.Decimal `json:"years_to_fire"`
	MonthsToFire         int             `json:"months_to_fire"`
	ReachedWithinHorizon bool            `json:"reached_within_horizon"`
	ProjectedBalance     decimal.Decimal `json:"projected_balance"`
	MonthlySavingsNeeded decimal.Decimal `json:"monthly_savings_needed"`
	SavingsShortfall     decimal.Decimal `json:"savings_shortfall"`
	ProgressPercentage   decimal.Decimal `json:"progress_percentage"`
	ProjectedFireDate    time.Time       `json:"projected_fire_date"`
	FIREAge              *int            `json:"fire_age,omitempty"`
}

// AlreadyThere reports whether the current net worth already meets the target.
func (r *FIREResult) AlreadyThere() bool {
	return !r.TargetUnreachable && r.MonthsToFire == 0
}
