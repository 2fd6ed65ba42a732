package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345, "USD")
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d, "EUR")
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}
	if m2.Currency != "EUR" {
		t.Fatalf("currency mismatch: got %s", m2.Currency)
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"1995.555", "1995.56"},
	}
	for _, c := range cases {
		d, _ := stddec.NewFromString(c.in)
		got := NewMoneyFromDecimal(d, "USD").Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	m := NewMoney(100, "USD")
	if got := m.Annual().String(); got != "1200.00" {
		t.Fatalf("Annual got %s", got)
	}
	if got := m.Annual().Monthly().String(); got != "100.00" {
		t.Fatalf("Monthly after Annual got %s", got)
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1000000, "USD", "$1,000,000.00"},
		{1995.6, "", "$1,995.60"},
		{-250.5, "USD", "-$250.50"},
		{12.5, "XYZ", "XYZ 12.50"},
	}
	for _, c := range cases {
		if got := NewMoney(c.amount, c.currency).Display(); got != c.want {
			t.Fatalf("Display(%v %s) got %q want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestRates(t *testing.T) {
	if got := PercentToRate(stddec.NewFromInt(4)); !got.Equal(stddec.NewFromFloat(0.04)) {
		t.Fatalf("PercentToRate(4) got %s", got)
	}
	if got := RateToPercent(stddec.NewFromFloat(0.04)); !got.Equal(stddec.NewFromInt(4)) {
		t.Fatalf("RateToPercent(0.04) got %s", got)
	}
	if got := MonthlyRate(stddec.NewFromInt(12)); !got.Equal(stddec.NewFromFloat(0.01)) {
		t.Fatalf("MonthlyRate(12) got %s", got)
	}
	if got := MonthlyRate(stddec.Zero); !got.IsZero() {
		t.Fatalf("MonthlyRate(0) got %s", got)
	}
}

func TestClampAndNonNegative(t *testing.T) {
	lo, hi := stddec.Zero, stddec.NewFromInt(100)
	if got := Clamp(stddec.NewFromInt(-5), lo, hi); !got.Equal(lo) {
		t.Fatalf("Clamp low got %s", got)
	}
	if got := Clamp(stddec.NewFromInt(250), lo, hi); !got.Equal(hi) {
		t.Fatalf("Clamp high got %s", got)
	}
	if got := Clamp(stddec.NewFromInt(42), lo, hi); !got.Equal(stddec.NewFromInt(42)) {
		t.Fatalf("Clamp mid got %s", got)
	}
	if got := NonNegative(stddec.NewFromInt(-1)); !got.IsZero() {
		t.Fatalf("NonNegative got %s", got)
	}
}

func TestDisplay_BeyondMinorUnitRange(t *testing.T) {
	huge := stddec.New(1, 20)
	if got, want := NewMoneyFromDecimal(huge, "USD").Display(), "USD 100000000000000000000.00"; got != want {
		t.Fatalf("Display(1e20) got %q want %q", got, want)
	}
	if got, want := NewMoneyFromDecimal(huge.Neg(), "USD").Display(), "USD -100000000000000000000.00"; got != want {
		t.Fatalf("Display(-1e20) got %q want %q", got, want)
	}
	// just inside the int64 range still uses the currency format
	if got := NewMoneyFromDecimal(stddec.New(1, 14), "USD").Display(); got != "$100,000,000,000,000.00" {
		t.Fatalf("Display(1e14) got %q", got)
	}
}
