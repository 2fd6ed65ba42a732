package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "FIRENumber", "TargetUnreachable", "MonthsToFire", "YearsToFire", "ProjectedFireDate", "MonthlySavingsNeeded", "ProgressPercentage"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedByName(results.Scenarios) {
		r := sc.Result
		row := []string{
			sc.Name,
			r.FIRENumber.StringFixed(2),
			boolToString(r.TargetUnreachable),
			intToString(r.MonthsToFire),
			r.YearsToFire.StringFixed(4),
			r.ProjectedFireDate.Format("2006-01-02"),
			r.MonthlySavingsNeeded.StringFixed(2),
			r.ProgressPercentage.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatSensitivity writes one row per sweep step.
func (c CSVSummarizer) FormatSensitivity(analysis *domain.SensitivityAnalysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Parameter", "Value", "FIRENumber", "MonthsToFire", "YearsToFire", "ProjectedFireDate", "MonthlySavingsNeeded"}); err != nil {
		return nil, err
	}
	for _, row := range analysis.Results {
		r := row.Result
		if err := w.Write([]string{
			analysis.Parameter.Name,
			row.Value.String(),
			r.FIRENumber.StringFixed(2),
			intToString(r.MonthsToFire),
			r.YearsToFire.StringFixed(4),
			r.ProjectedFireDate.Format("2006-01-02"),
			r.MonthlySavingsNeeded.StringFixed(2),
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedExporter writes every input and result field per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "AnnualExpenses", "WithdrawalRatePercent", "ExpectedReturnPercent", "MonthlySavingsContribution", "CurrentNetWorth",
		"FIRENumber", "TargetUnreachable", "MonthsToFire", "YearsToFire", "ReachedWithinHorizon", "ProjectedBalance",
		"MonthlySavingsNeeded", "SavingsShortfall", "ProgressPercentage", "ProjectedFireDate", "FIREAge",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedByName(results.Scenarios) {
		in, r := sc.Inputs, sc.Result
		age := ""
		if r.FIREAge != nil {
			age = intToString(*r.FIREAge)
		}
		row := []string{
			sc.Name,
			in.AnnualExpenses.StringFixed(2),
			in.WithdrawalRatePercent.String(),
			in.ExpectedReturnPercent.String(),
			in.MonthlySavingsContribution.StringFixed(2),
			in.CurrentNetWorth.StringFixed(2),
			r.FIRENumber.StringFixed(2),
			boolToString(r.TargetUnreachable),
			intToString(r.MonthsToFire),
			r.YearsToFire.StringFixed(4),
			boolToString(r.ReachedWithinHorizon),
			r.ProjectedBalance.StringFixed(2),
			r.MonthlySavingsNeeded.StringFixed(2),
			r.SavingsShortfall.StringFixed(2),
			r.ProgressPercentage.StringFixed(2),
			r.ProjectedFireDate.Format("2006-01-02"),
			age,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func sortedByName(in []domain.ScenarioSummary) []domain.ScenarioSummary {
	scenarios := append([]domain.ScenarioSummary(nil), in...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
