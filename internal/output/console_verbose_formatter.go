package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#282726")
	colorTextDim   = lipgloss.Color("#575653")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
	colorOrange    = lipgloss.Color("#DA702C")
	colorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// ConsoleVerboseFormatter renders the full styled console report.
type ConsoleVerboseFormatter struct {
	Currency string
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, renderTitle("FIRE PROJECTION REPORT"))
	fmt.Fprintln(&buf)

	fmt.Fprint(&buf, renderTable("Net Worth", []string{"Item", "Value"}, [][]string{
		{"Total assets", FormatMoney(results.TotalAssets, c.Currency)},
		{"Total liabilities", FormatMoney(results.TotalLiabilities, c.Currency)},
		{"Net worth", FormatMoney(results.CurrentNetWorth, c.Currency)},
		{"FIRE goal", FormatMoney(results.FIREGoal, c.Currency)},
	}))
	fmt.Fprintf(&buf, "  Goal progress %s %s\n\n", renderProgressBar(results.GoalProgress, 30), FormatPercentage(results.GoalProgress))

	rows := make([][]string, 0, len(results.Scenarios))
	for _, sc := range RankScenarios(results) {
		r := sc.Result
		rows = append(rows, []string{
			intToString(sc.Rank),
			sc.Name,
			FormatFIRENumber(r, c.Currency),
			FormatTimeToFire(r),
			FormatFireDate(r),
			FormatFireAge(r),
			FormatMoney(r.MonthlySavingsNeeded, c.Currency),
			FormatMoney(r.SavingsShortfall, c.Currency),
			FormatPercentage(r.ProgressPercentage),
		})
	}
	fmt.Fprint(&buf, renderTable("Scenarios", []string{"#", "Scenario", "FIRE Number", "Time to FIRE", "Date", "Age", "Needed/mo", "Shortfall/mo", "Progress"}, rows))
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios {
		in := sc.Inputs
		fmt.Fprintf(&buf, "  %s %s\n", headerStyle.Render(sc.Name), mutedStyle.Render(fmt.Sprintf(
			"expenses %s/yr · withdrawal %s · return %s · saving %s/mo",
			FormatMoney(in.AnnualExpenses, c.Currency),
			FormatPercentage(in.WithdrawalRatePercent),
			FormatPercentage(in.ExpectedReturnPercent),
			FormatMoney(in.MonthlySavingsContribution, c.Currency))))
	}
	fmt.Fprintln(&buf)

	if len(results.Analysis.Recommendations) > 0 {
		fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Recommendations"))
		for _, rec := range results.Analysis.Recommendations {
			style := goodStyle
			if strings.Contains(rec, "not reached") || strings.Contains(rec, "must be positive") {
				style = warnStyle
			}
			fmt.Fprintf(&buf, "  • %s\n", style.Render(rec))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "  %s\n", headerStyle.Render("Key Assumptions"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  • %s\n", mutedStyle.Render(a))
	}
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "\n  %s\n", dimStyle.Render("Generated "+results.GeneratedAt.Format("2006-01-02 15:04")))
	}

	return buf.Bytes(), nil
}

// FormatSensitivity renders the sweep as a styled table.
func (c ConsoleVerboseFormatter) FormatSensitivity(analysis *domain.SensitivityAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, renderTitle(fmt.Sprintf("SENSITIVITY: %s", analysis.Parameter.Name)))
	fmt.Fprintln(&buf)

	rows := make([][]string, 0, len(analysis.Results))
	for _, row := range analysis.Results {
		r := row.Result
		rows = append(rows, []string{
			formatSweepValue(analysis.Parameter.Name, row.Value, c.Currency),
			FormatFIRENumber(r, c.Currency),
			FormatTimeToFire(r),
			FormatFireDate(r),
			FormatMoney(r.MonthlySavingsNeeded, c.Currency),
		})
	}
	fmt.Fprint(&buf, renderTable("Base scenario: "+analysis.BaseScenarioName,
		[]string{analysis.Parameter.Name, "FIRE Number", "Time to FIRE", "Date", "Needed/mo"}, rows))
	fmt.Fprintf(&buf, "\n  %s\n", mutedStyle.Render(fmt.Sprintf("Spread between fastest and slowest step: %s years", analysis.YearsSpread.StringFixed(2))))
	return buf.Bytes(), nil
}

// renderTitle renders a centered title bar in a bordered box.
func renderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// renderTable renders a bordered table with headers and rows.
func renderTable(title string, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(cell))
			b.WriteString(style.Render(" " + cell + pad + " "))
			if i < len(widths)-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	line(headers, headerStyle)
	rule("├", "┼", "┤")
	for _, row := range rows {
		line(row, lipgloss.NewStyle().Foreground(colorText))
	}
	rule("╰", "┴", "╯")
	return b.String()
}

// renderProgressBar draws a bar for a 0-100 percentage.
func renderProgressBar(pct decimal.Decimal, width int) string {
	p := pct.InexactFloat64() / 100
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p * float64(width))

	color := colorRed
	if p >= 0.75 {
		color = colorGreen
	} else if p >= 0.25 {
		color = colorOrange
	}

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}
