package output_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rpgo/numwords/internal/domain"
	"github.com/rpgo/numwords/internal/output"
)

func TestGenerateReport_AllFormats(t *testing.T) {
	r := &domain.Report{}
	r.Add(domain.Conversion{Direction: domain.DirectionEncode, Input: "3", Output: "three"})

	for _, name := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		if err := output.GenerateReport(&buf, r, name); err != nil {
			t.Fatalf("GenerateReport %s error: %v", name, err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("three")) {
			t.Fatalf("GenerateReport %s missing output: %s", name, buf.String())
		}
	}
}

func TestGenerateReport_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := output.GenerateReport(&buf, &domain.Report{}, "html")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
