package output

import "github.com/rpgo/numwords/internal/domain"

// resultText is the converted value, or the error prefixed with "error: ".
func resultText(c domain.Conversion) string {
	if c.Failed() {
		return "error: " + c.Error
	}
	return c.Output
}

func statusOf(c domain.Conversion) string {
	if c.Failed() {
		return "error"
	}
	return "ok"
}

// inputWidth is the display width of the longest input, so arrows line up.
func inputWidth(convs []domain.Conversion) int {
	w := 0
	for _, c := range convs {
		if n := len([]rune(c.Input)); n > w {
			w = n
		}
	}
	return w
}
