package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":   FormatPercentage,
	"years": FormatTimeToFire,
	"date":  FormatFireDate,
	"age":   FormatFireAge,
	"bar": func(p decimal.Decimal) string {
		return p.Round(0).String()
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	currency := h.Currency
	data := struct {
		*domain.ScenarioComparison
		Ranked         []RankedScenario
		Recommendation Recommendation
		Assumptions    []string
		Money          func(decimal.Decimal) string
		FIRENumber     func(domain.FIREResult) string
	}{
		ScenarioComparison: results,
		Ranked:             RankScenarios(results),
		Recommendation:     AnalyzeScenarios(results),
		Assumptions:        assumptionsFor(results),
		Money:              func(d decimal.Decimal) string { return FormatMoney(d, currency) },
		FIRENumber:         func(r domain.FIREResult) string { return FormatFIRENumber(r, currency) },
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
