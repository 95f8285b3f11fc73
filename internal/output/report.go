package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/numwords/internal/domain"
)

// GenerateReport renders the report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *domain.Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, report)
}
