package dateutil

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SplitMonths breaks a month count into whole years and remaining months
func SplitMonths(months int) (years, rem int) {
	return months / 12, months % 12
}

// AdvanceMonths adds whole years first and then the remaining months to a date
func AdvanceMonths(date time.Time, months int) time.Time {
	years, rem := SplitMonths(months)
	return date.AddDate(years, rem, 0)
}

// MonthsToYears converts a month count to fractional years
func MonthsToYears(months int) decimal.Decimal {
	return decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12))
}

// CeilYears rounds a month count up to whole years
func CeilYears(months int) int {
	if months <= 0 {
		return 0
	}
	return (months + 11) / 12
}

// DescribeMonths renders a month count as "N years M months", dropping zero parts
func DescribeMonths(months int) string {
	if months <= 0 {
		return "0 months"
	}
	years, rem := SplitMonths(months)
	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
