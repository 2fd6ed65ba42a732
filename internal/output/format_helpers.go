package output

import (
	"strconv"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal in the default currency with symbol and grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return FormatMoney(amount, fdec.DefaultCurrency)
}

// FormatMoney formats a decimal in the given ISO currency.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return fdec.NewMoneyFromDecimal(amount, currency).Display()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatFIRENumber renders the target, or "∞" when no finite target exists.
func FormatFIRENumber(r domain.FIREResult, currency string) string {
	if r.TargetUnreachable {
		return "∞"
	}
	return FormatMoney(r.FIRENumber, currency)
}

// FormatTimeToFire renders the time to FIRE in years and months.
func FormatTimeToFire(r domain.FIREResult) string {
	switch {
	case r.TargetUnreachable:
		return "never"
	case !r.ReachedWithinHorizon:
		return "over " + dateutil.DescribeMonths(r.MonthsToFire)
	case r.MonthsToFire == 0:
		return "now"
	}
	return dateutil.DescribeMonths(r.MonthsToFire)
}

// FormatFireDate renders the projected date as year-month, or "-" when it is not reachable.
func FormatFireDate(r domain.FIREResult) string {
	if r.TargetUnreachable || !r.ReachedWithinHorizon {
		return "-"
	}
	return r.ProjectedFireDate.Format("2006-01")
}

// FormatFireAge renders the age at FIRE, or "-" when unknown.
func FormatFireAge(r domain.FIREResult) string {
	if r.FIREAge == nil || r.TargetUnreachable || !r.ReachedWithinHorizon {
		return "-"
	}
	return intToString(*r.FIREAge)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// formatSweepValue renders a sensitivity step value in the unit of its parameter.
func formatSweepValue(param string, v decimal.Decimal, currency string) string {
	switch param {
	case domain.ParamExpectedReturn, domain.ParamWithdrawalRate:
		return FormatPercentage(v)
	default:
		return FormatMoney(v, currency)
	}
}
