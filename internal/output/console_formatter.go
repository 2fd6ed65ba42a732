package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct {
	Currency string
}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FIRE SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Net Worth: %s (goal %s, %s)\n",
		FormatMoney(results.CurrentNetWorth, c.Currency),
		FormatMoney(results.FIREGoal, c.Currency),
		FormatPercentage(results.GoalProgress))
	fmt.Fprintln(&buf)
	for _, sc := range RankScenarios(results) {
		r := sc.Result
		fmt.Fprintf(&buf, "%d. %s: FIRE=%s Time=%s Date=%s Age=%s\n",
			sc.Rank,
			sc.Name,
			FormatFIRENumber(r, c.Currency),
			FormatTimeToFire(r),
			FormatFireDate(r),
			FormatFireAge(r),
		)
		fmt.Fprintf(&buf, "   Needed=%s/mo Saving=%s/mo Progress=%s\n",
			FormatMoney(r.MonthlySavingsNeeded, c.Currency),
			FormatMoney(sc.Inputs.MonthlySavingsContribution, c.Currency),
			FormatPercentage(r.ProgressPercentage))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s sooner than the slowest scenario)\n", rec.ScenarioName, dateutil.DescribeMonths(rec.MonthsSaved))
	}
	return buf.Bytes(), nil
}

// FormatSensitivity renders one line per sweep step.
func (c ConsoleFormatter) FormatSensitivity(analysis *domain.SensitivityAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SENSITIVITY: %s (%s)\n", analysis.Parameter.Name, analysis.BaseScenarioName)
	fmt.Fprintln(&buf, "================================")
	for _, row := range analysis.Results {
		fmt.Fprintf(&buf, "%s=%s: Time=%s Needed=%s/mo\n",
			analysis.Parameter.Name,
			formatSweepValue(analysis.Parameter.Name, row.Value, c.Currency),
			FormatTimeToFire(row.Result),
			FormatMoney(row.Result.MonthlySavingsNeeded, c.Currency))
	}
	fmt.Fprintf(&buf, "Spread: %s years\n", analysis.YearsSpread.StringFixed(2))
	return buf.Bytes(), nil
}
