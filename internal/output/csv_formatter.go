package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/numwords/internal/domain"
)

// CSVFormatter writes one row per conversion, in input order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Direction", "Input", "Output", "Status", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, conv := range report.Conversions {
		row := []string{
			string(conv.Direction),
			conv.Input,
			conv.Output,
			statusOf(conv),
			conv.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
