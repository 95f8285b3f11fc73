package conversion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/numwords/internal/domain"
	numdec "github.com/rpgo/numwords/pkg/decimal"
	"github.com/rpgo/numwords/pkg/numwords"
)

var (
	// ErrInvalidNumber is recorded for encode inputs that are not decimal literals
	ErrInvalidNumber = errors.New("invalid number")
	// ErrRangeTooLarge is returned when a range exceeds Settings.MaxRangeSpan
	ErrRangeTooLarge = errors.New("range too large")
	// ErrConversionFailed summarizes a report with at least one failed item
	ErrConversionFailed = errors.New("conversion failed")
)

// Engine runs the numwords converter over batches of inputs and records
// each outcome in a domain.Report.
type Engine struct {
	Settings domain.Settings
	Logger   Logger
}

// NewEngine creates a new conversion engine
func NewEngine(settings domain.Settings) *Engine {
	return &Engine{
		Settings: settings,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// EncodeOne spells a single decimal literal such as "42" or "3.14".
// Integers are converted exactly, whatever their size up to the uint64
// limit; fractions are rounded to Settings.FractionPlaces unless it is
// domain.ShortestFraction.
func (e *Engine) EncodeOne(input string) domain.Conversion {
	c := domain.Conversion{Direction: domain.DirectionEncode, Input: input}

	n, err := numdec.NewNumberFromString(strings.TrimSpace(input))
	if err != nil {
		c.Error = ErrInvalidNumber.Error()
		return c
	}
	if e.Settings.FractionPlaces != domain.ShortestFraction {
		n = n.Round(e.Settings.FractionPlaces)
	}

	words, err := numwords.EncodeNumber(n.Decimal)
	if err != nil {
		c.Error = err.Error()
		return c
	}
	c.Output = words
	return c
}

// DecodeOne parses a single phrase, with or without a "point" fraction.
func (e *Engine) DecodeOne(phrase string) domain.Conversion {
	c := domain.Conversion{Direction: domain.DirectionDecode, Input: phrase}

	d, err := numwords.DecodeWordsDecimalExact(phrase)
	if err != nil {
		c.Error = err.Error()
		return c
	}
	c.Output = d.String()
	return c
}

// Encode spells every input in order.
func (e *Engine) Encode(ctx context.Context, inputs []string) (*domain.Report, error) {
	return e.run(ctx, inputs, e.EncodeOne)
}

// Decode parses every phrase in order.
func (e *Engine) Decode(ctx context.Context, phrases []string) (*domain.Report, error) {
	return e.run(ctx, phrases, e.DecodeOne)
}

func (e *Engine) run(ctx context.Context, inputs []string, convert func(string) domain.Conversion) (*domain.Report, error) {
	report := &domain.Report{Conversions: make([]domain.Conversion, 0, len(inputs))}
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		c := convert(in)
		if c.Failed() {
			e.Logger.Warnf("%s %q: %s", c.Direction, c.Input, c.Error)
		} else {
			e.Logger.Debugf("%s %q -> %q", c.Direction, c.Input, c.Output)
		}
		report.Add(c)
	}
	e.Logger.Infof("converted %d inputs, %d failed", len(report.Conversions), report.Failed)
	return report, nil
}

// EncodeRange spells every integer in [low, high]. An inverted range
// yields an empty report.
func (e *Engine) EncodeRange(ctx context.Context, low, high uint64) (*domain.Report, error) {
	report := &domain.Report{}
	if low > high {
		e.Logger.Warnf("empty range %d..%d", low, high)
		return report, nil
	}
	if high-low >= e.Settings.MaxRangeSpan {
		return nil, fmt.Errorf("%w: %d..%d spans more than %d numbers", ErrRangeTooLarge, low, high, e.Settings.MaxRangeSpan)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := numwords.EncodeRange(low, high)
	report.Conversions = make([]domain.Conversion, 0, len(words))
	for i, w := range words {
		report.Add(domain.Conversion{
			Direction: domain.DirectionEncode,
			Input:     strconv.FormatUint(low+uint64(i), 10),
			Output:    w,
		})
	}
	e.Logger.Infof("encoded range %d..%d (%d numbers)", low, high, len(words))
	return report, nil
}

// Check returns ErrConversionFailed when any item in the report failed.
func Check(report *domain.Report) error {
	if report == nil || report.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d inputs", ErrConversionFailed, report.Failed, len(report.Conversions))
}
