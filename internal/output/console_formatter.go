package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/numwords/internal/domain"
)

// ConsoleFormatter prints one "input => output" line per conversion and a
// failure summary when anything failed.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	width := inputWidth(report.Conversions)
	for _, conv := range report.Conversions {
		fmt.Fprintf(&buf, "%-*s => %s\n", width, conv.Input, resultText(conv))
	}
	if report.Failed > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%d converted, %d failed\n", report.Succeeded, report.Failed)
	}
	return buf.Bytes(), nil
}

// PlainFormatter prints only the converted values, one per line, so the
// output can be piped into other tools.
type PlainFormatter struct{}

func (p PlainFormatter) Name() string { return "plain" }

func (p PlainFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, conv := range report.Conversions {
		fmt.Fprintln(&buf, resultText(conv))
	}
	return buf.Bytes(), nil
}
