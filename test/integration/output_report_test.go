package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	results, err := newEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		name, err := output.GenerateReportFile(results, format, dir, output.Options{Currency: "USD"})
		require.NoError(t, err, format)

		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.NotEmpty(t, data, format)
		assert.Equal(t, dir, filepath.Dir(name))
	}
}

func TestConsoleReportContents(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	results, err := newEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.WriteTo(&buf, results, "console-lite", output.Options{}))
	content := buf.String()

	assert.Contains(t, content, "Net Worth: $150,000.00 (goal $1,000,000.00, 15.00%)")
	assert.Contains(t, content, "Reference: FIRE=$750,000.00 Time=10 years 3 months Date=2035-06 Age=41")
	assert.True(t, strings.Contains(content, "Recommended: Reference"))
}
