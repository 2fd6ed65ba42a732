package decimal

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured
const DefaultCurrency = "USD"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)

	// go-money stores amounts as int64 minor units
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// Money represents a monetary amount in a given currency with full decimal precision
type Money struct {
	decimal.Decimal
	Currency string
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64, currency string) Money {
	return Money{decimal.NewFromFloat(value), currency}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal, currency string) Money {
	return Money{d, currency}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2), m.Currency}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve), m.Currency}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve), m.Currency}
}

// String returns the plain two-decimal representation
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Display formats the amount with the currency's symbol, grouping and minor units.
// Unknown currency codes fall back to "CODE 1234.56".
func (m Money) Display() string {
	code := m.Currency
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return code + " " + m.String()
	}
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return code + " " + m.String()
	}
	return money.New(minor.IntPart(), code).Display()
}

// PercentToRate converts a percentage such as 4 into the fraction 0.04
func PercentToRate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// RateToPercent converts a fraction such as 0.04 into the percentage 4
func RateToPercent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred)
}

// MonthlyRate converts an annual percentage into the equivalent monthly fraction (simple division by 12)
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return PercentToRate(annualPercent).Div(twelve)
}

// Clamp bounds d to [lo, hi]
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// NonNegative returns d, or zero when d is negative
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
