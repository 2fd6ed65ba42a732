package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitMonths(t *testing.T) {
	tests := []struct {
		months    int
		wantYears int
		wantRem   int
	}{
		{0, 0, 0},
		{11, 0, 11},
		{12, 1, 0},
		{235, 19, 7},
		{1200, 100, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d months", tt.months), func(t *testing.T) {
			years, rem := SplitMonths(tt.months)
			assert.Equal(t, tt.wantYears, years)
			assert.Equal(t, tt.wantRem, rem)
		})
	}
}

// TestAdvanceMonths covers month-end normalisation the same way time.AddDate does
func TestAdvanceMonths(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "Zero months",
			from:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			months:   0,
			expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Years and months",
			from:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			months:   235,
			expected: time.Date(2044, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Wraps into next year",
			from:     time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Century ceiling",
			from:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			months:   1200,
			expected: time.Date(2125, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdvanceMonths(tt.from, tt.months))
		})
	}
}

func TestMonthsToYears(t *testing.T) {
	assert.True(t, MonthsToYears(0).IsZero())
	assert.True(t, MonthsToYears(18).Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, MonthsToYears(1200).Equal(decimal.NewFromInt(100)))
}

func TestCeilYears(t *testing.T) {
	assert.Equal(t, 0, CeilYears(0))
	assert.Equal(t, 0, CeilYears(-5))
	assert.Equal(t, 1, CeilYears(1))
	assert.Equal(t, 1, CeilYears(12))
	assert.Equal(t, 2, CeilYears(13))
	assert.Equal(t, 20, CeilYears(235))
}

func TestDescribeMonths(t *testing.T) {
	assert.Equal(t, "0 months", DescribeMonths(0))
	assert.Equal(t, "1 month", DescribeMonths(1))
	assert.Equal(t, "7 months", DescribeMonths(7))
	assert.Equal(t, "1 year", DescribeMonths(12))
	assert.Equal(t, "19 years 7 months", DescribeMonths(235))
	assert.Equal(t, "2 years 1 month", DescribeMonths(25))
}
