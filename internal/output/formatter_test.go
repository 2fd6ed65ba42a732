package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	age := 30
	config := &domain.Configuration{
		NetWorth: domain.NetWorthSnapshot{
			Assets:      []domain.Holding{{Name: "Brokerage", Value: decimal.NewFromInt(150000)}},
			Liabilities: []domain.Holding{{Name: "Car loan", Value: decimal.NewFromInt(50000)}},
		},
		CurrentAge: &age,
		Scenarios: []domain.Scenario{
			{Name: "B", AnnualExpenses: decimal.NewFromInt(30000), WithdrawalRatePercent: decimal.NewFromInt(4), ExpectedReturnPercent: decimal.NewFromInt(7), MonthlySavingsContribution: decimal.NewFromInt(2000)},
			{Name: "A", AnnualExpenses: decimal.NewFromInt(60000), WithdrawalRatePercent: decimal.NewFromInt(4), ExpectedReturnPercent: decimal.NewFromInt(7), MonthlySavingsContribution: decimal.NewFromInt(2000)},
			{Name: "C", AnnualExpenses: decimal.NewFromInt(30000), WithdrawalRatePercent: decimal.Zero, ExpectedReturnPercent: decimal.NewFromInt(7), MonthlySavingsContribution: decimal.NewFromInt(2000)},
		},
	}
	engine := calculation.NewCalculationEngine()
	engine.Now = func() time.Time { return time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC) }
	results, err := engine.RunScenarios(context.Background(), config)
	require.NoError(t, err)
	return results
}

func TestRankScenarios(t *testing.T) {
	ranked := RankScenarios(buildTestComparison(t))
	require.Len(t, ranked, 3)
	assert.Equal(t, "B", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "A", ranked[1].Name)
	assert.Equal(t, "C", ranked[2].Name, "unreachable scenarios rank last")
}

func TestAnalyzeScenarios(t *testing.T) {
	results := buildTestComparison(t)
	rec := AnalyzeScenarios(results)
	assert.Equal(t, "B", rec.ScenarioName)

	var a, b domain.ScenarioSummary
	for _, sc := range results.Scenarios {
		switch sc.Name {
		case "A":
			a = sc
		case "B":
			b = sc
		}
	}
	assert.Equal(t, b.Result.MonthsToFire, rec.MonthsToFire)
	assert.Equal(t, a.Result.MonthsToFire-b.Result.MonthsToFire, rec.MonthsSaved)
	assert.Positive(t, rec.MonthsSaved)
}

func TestAnalyzeScenarios_NothingReachable(t *testing.T) {
	results := &domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{
		{Name: "X", Result: domain.FIREResult{TargetUnreachable: true, MonthsToFire: 1200}},
	}}
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(results))
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "FIRE SCENARIO SUMMARY")
	assert.Contains(t, content, "Recommended: B")
	assert.Contains(t, content, "1. B: FIRE=$750,000.00")
	assert.Contains(t, content, "3. C: FIRE=∞ Time=never")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{Currency: "USD"}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "FIRE PROJECTION REPORT")
	assert.Contains(t, content, "$100,000.00")
	assert.Contains(t, content, "Key Assumptions")
	assert.Contains(t, content, "C: withdrawal rate must be positive")
}

func TestConsoleVerboseFormatter_Currency(t *testing.T) {
	out, err := ConsoleVerboseFormatter{Currency: "EUR"}.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "€")
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header + 3 rows")
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, "A", records[1][0])
	assert.Equal(t, "B", records[2][0])
	assert.Equal(t, "C", records[3][0])
	assert.Equal(t, "750000.00", records[2][1])
	assert.Equal(t, "true", records[3][2])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Len(t, records[0], 17)
	assert.Equal(t, "100000.00", records[1][5])
	assert.NotEmpty(t, records[2][16], "FIRE age is present when current age is known")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	var decoded domain.ScenarioComparison
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Len(t, decoded.Scenarios, 3)
	assert.Equal(t, "B", decoded.Analysis.FastestScenario)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{Currency: "USD"}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "FIRE Projection Report")
	assert.Contains(t, content, "$750,000.00")
	assert.Contains(t, content, "<strong>Recommended:</strong> B")
}

func TestSensitivityFormatters(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	base := domain.FIREInputs{
		AnnualExpenses:             decimal.NewFromInt(30000),
		WithdrawalRatePercent:      decimal.NewFromInt(4),
		ExpectedReturnPercent:      decimal.NewFromInt(7),
		MonthlySavingsContribution: decimal.NewFromInt(2000),
		CurrentNetWorth:            decimal.NewFromInt(100000),
	}
	analysis, err := engine.RunSensitivity(base, domain.SensitivityParameter{
		Name: domain.ParamExpectedReturn, MinValue: decimal.NewFromInt(4), MaxValue: decimal.NewFromInt(8), Steps: 3,
	})
	require.NoError(t, err)

	for _, f := range []SensitivityFormatter{ConsoleVerboseFormatter{}, ConsoleFormatter{}, CSVSummarizer{}, JSONFormatter{}} {
		out, err := f.FormatSensitivity(analysis)
		require.NoError(t, err)
		assert.Contains(t, string(out), domain.ParamExpectedReturn)
	}

	out, err := ConsoleFormatter{}.FormatSensitivity(analysis)
	require.NoError(t, err)
	assert.Contains(t, string(out), "expected_return=6.00%")
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console":       "console",
		"verbose":       "console",
		"":              "console",
		" Console-Lite": "console-lite",
		"text":          "console-lite",
		"csv-summary":   "csv",
		"csv-detailed":  "detailed-csv",
		"html-report":   "html",
		"JSON":          "json",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if assert.NotNil(t, f, in) {
			assert.Equal(t, want, f.Name(), in)
		}
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json"}, AvailableFormatterNames())
	assert.NotContains(t, AvailableFormatAliases(), "")
}
