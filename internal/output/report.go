package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// WriteFormatted runs a formatter and writes output to a timestamped file with extension in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("fire_report_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", filename, err)
	}
	return filename, nil
}

// GenerateReport writes the comparison in the given format to a timestamped file in the
// current directory.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	_, err := GenerateReportFile(results, format, ".", Options{})
	return err
}

// GenerateReportFile writes the comparison in the given format to dir and returns the file name.
func GenerateReportFile(results *domain.ScenarioComparison, format, dir string, opts Options) (string, error) {
	f, err := lookup(format, opts)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir, extensionFor(f.Name()))
}

// WriteTo streams the comparison in the given format to w.
func WriteTo(w io.Writer, results *domain.ScenarioComparison, format string, opts Options) error {
	f, err := lookup(format, opts)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteSensitivityTo streams a sensitivity sweep in the given format to w.
func WriteSensitivityTo(w io.Writer, analysis *domain.SensitivityAnalysis, format string, opts Options) error {
	f, err := lookup(format, opts)
	if err != nil {
		return err
	}
	sf, ok := f.(SensitivityFormatter)
	if !ok {
		return fmt.Errorf("%w: %q cannot render sensitivity analysis", ErrUnsupportedFormat, format)
	}
	data, err := sf.FormatSensitivity(analysis)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

func lookup(format string, opts Options) (Formatter, error) {
	if f := GetFormatter(format, opts); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

func extensionFor(name string) string {
	switch {
	case strings.HasPrefix(name, "console"):
		return "txt"
	case strings.Contains(name, "csv"):
		return "csv"
	}
	return name
}
