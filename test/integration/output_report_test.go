package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rpgo/numwords/internal/config"
	"github.com/rpgo/numwords/internal/conversion"
	"github.com/rpgo/numwords/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	// Load settings
	parser := config.NewInputParser()
	settings, err := parser.LoadFromFile("../testdata/example_settings.yaml")
	require.NoError(t, err)

	// Run conversions, one of which fails
	engine := conversion.NewEngine(*settings)
	report, err := engine.Decode(context.Background(), []string{"two hundred thirty four thousand", "foo bar"})
	require.NoError(t, err)
	assert.ErrorIs(t, conversion.Check(report), conversion.ErrConversionFailed)

	// Configured format
	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, report, settings.Format))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "decode,two hundred thirty four thousand,234000,ok,", lines[1])

	// Every other format
	for _, name := range output.AvailableFormatterNames() {
		buf.Reset()
		assert.NoError(t, output.GenerateReport(&buf, report, name), name)
		assert.Contains(t, buf.String(), "234000", name)
	}
}
