package output

import (
	"sort"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// SensitivityFormatter is implemented by formatters that can also render a parameter sweep.
type SensitivityFormatter interface {
	FormatSensitivity(analysis *domain.SensitivityAnalysis) ([]byte, error)
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// Options configures the built-in formatters.
type Options struct {
	// Currency is the ISO 4217 code amounts are displayed in. Empty means USD.
	Currency string
}

func (o Options) currency() string {
	if o.Currency == "" {
		return fdec.DefaultCurrency
	}
	return strings.ToUpper(o.Currency)
}

// builtInFormatters returns the available formatters configured with opts.
func builtInFormatters(opts Options) []Formatter {
	cur := opts.currency()
	return []Formatter{
		ConsoleVerboseFormatter{Currency: cur},
		ConsoleFormatter{Currency: cur},
		CSVSummarizer{},
		CSVDetailedExporter{},
		HTMLFormatter{Currency: cur},
		JSONFormatter{},
	}
}

// GetFormatterByName fetches a registered formatter with default options.
func GetFormatterByName(name string) Formatter {
	return GetFormatter(name, Options{})
}

// GetFormatter fetches a registered formatter by name or alias, or nil.
func GetFormatter(name string, opts Options) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters(opts) {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"":                "console",
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console-lite",
	"plain":           "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	formatters := builtInFormatters(Options{})
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
