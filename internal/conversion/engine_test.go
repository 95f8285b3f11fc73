package conversion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rpgo/numwords/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	debug, info, warn []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {}

func TestNewEngine(t *testing.T) {
	e := NewEngine(domain.DefaultSettings())
	assert.NotNil(t, e)
	assert.IsType(t, NopLogger{}, e.Logger)

	e.SetLogger(&recordingLogger{})
	assert.IsType(t, &recordingLogger{}, e.Logger)
	e.SetLogger(nil)
	assert.IsType(t, NopLogger{}, e.Logger)
}

func TestEncodeOne(t *testing.T) {
	e := NewEngine(domain.DefaultSettings())
	tests := []struct {
		in   string
		want string
	}{
		{"0", "zero"},
		{"123", "one hundred twenty three"},
		{" 234000 ", "two hundred thirty four thousand"},
		{"1.5", "one point five"},
		{"12.050", "twelve point zero five"},
		{"1e3", "one thousand"},
		// exact even past float64's 53-bit mantissa
		{"9007199254740993", "nine quadrillion seven trillion one hundred ninety nine billion two hundred fifty four million seven hundred forty thousand nine hundred ninety three"},
	}
	for _, tt := range tests {
		c := e.EncodeOne(tt.in)
		assert.False(t, c.Failed(), "input %q: %s", tt.in, c.Error)
		assert.Equal(t, tt.want, c.Output, "input %q", tt.in)
		assert.Equal(t, domain.DirectionEncode, c.Direction)
	}
}

func TestEncodeOne_FixedPlaces(t *testing.T) {
	s := domain.DefaultSettings()
	s.FractionPlaces = 2
	e := NewEngine(s)

	assert.Equal(t, "three point one four", e.EncodeOne("3.14159").Output)
	assert.Equal(t, "three", e.EncodeOne("2.999").Output)
	assert.Equal(t, "seven", e.EncodeOne("7").Output)
}

func TestEncodeOne_Failures(t *testing.T) {
	e := NewEngine(domain.DefaultSettings())

	c := e.EncodeOne("twelve")
	assert.True(t, c.Failed())
	assert.Equal(t, "invalid number", c.Error)

	c = e.EncodeOne("-5")
	assert.True(t, c.Failed())
	assert.Equal(t, "value out of range", c.Error)

	c = e.EncodeOne("18446744073709551616")
	assert.True(t, c.Failed())
	assert.Equal(t, "value out of range", c.Error)
}

func TestDecodeOne(t *testing.T) {
	e := NewEngine(domain.DefaultSettings())

	c := e.DecodeOne("One Hundred Twenty Three")
	assert.Equal(t, "123", c.Output)
	assert.Equal(t, domain.DirectionDecode, c.Direction)

	assert.Equal(t, "1.5", e.DecodeOne("one point five").Output)
	assert.Equal(t, "12.05", e.DecodeOne("twelve point zero five").Output)

	c = e.DecodeOne("foo bar")
	assert.True(t, c.Failed())
	assert.Contains(t, c.Error, "unknown token")
	assert.Contains(t, c.Error, `"foo"`)
}

func TestEncodeAndDecodeBatch(t *testing.T) {
	log := &recordingLogger{}
	e := NewEngine(domain.DefaultSettings())
	e.SetLogger(log)

	report, err := e.Encode(context.Background(), []string{"1", "x", "21"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "twenty one"}, report.Outputs())
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, log.warn, 1)
	assert.Len(t, log.debug, 2)
	assert.Equal(t, []string{"converted 3 inputs, 1 failed"}, log.info)

	err = Check(report)
	assert.True(t, errors.Is(err, ErrConversionFailed))
	assert.Contains(t, err.Error(), "1 of 3 inputs")

	report, err = e.Decode(context.Background(), []string{"one", "twenty one"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "21"}, report.Outputs())
	assert.NoError(t, Check(report))
}

func TestEncode_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewEngine(domain.DefaultSettings())
	report, err := e.Encode(ctx, []string{"1", "2"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Conversions)
}

func TestEngineEncodeRange(t *testing.T) {
	e := NewEngine(domain.DefaultSettings())

	report, err := e.EncodeRange(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, report.Outputs())
	assert.Equal(t, "3", report.Conversions[2].Input)

	report, err = e.EncodeRange(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Empty(t, report.Conversions)
}

func TestEngineEncodeRange_TooLarge(t *testing.T) {
	s := domain.DefaultSettings()
	s.MaxRangeSpan = 10
	e := NewEngine(s)

	_, err := e.EncodeRange(context.Background(), 0, 9)
	assert.NoError(t, err)

	_, err = e.EncodeRange(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	_, err = e.EncodeRange(context.Background(), 0, ^uint64(0))
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestCheck_Nil(t *testing.T) {
	assert.NoError(t, Check(nil))
	assert.NoError(t, Check(&domain.Report{}))
}
