package numwords

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	numdec "github.com/rpgo/numwords/pkg/decimal"
)

const pointSeparator = " point "

// EncodeDecimal spells x with its fraction read digit by digit, e.g.
// 12.05 -> "twelve point zero five".
//
// The fraction digits are those of the shortest decimal string that parses
// back to the same float64, so 0.1 reads "zero point one". Negative, NaN
// and infinite inputs, and values of 2^64 or more, fail with ErrOutOfRange.
func EncodeDecimal(x float64) (string, error) {
	n, err := toNumber(x)
	if err != nil {
		return "", err
	}
	return encodeNumber(n)
}

// EncodeDecimalFixed is EncodeDecimal after rounding x half away from zero
// to places fraction digits. Trailing zeros are not spoken, so 2.50 with
// two places reads "two point five". A negative places uses the shortest
// representation, like EncodeDecimal.
func EncodeDecimalFixed(x float64, places int32) (string, error) {
	n, err := toNumber(x)
	if err != nil {
		return "", err
	}
	if places >= 0 {
		n = n.Round(places)
	}
	return encodeNumber(n)
}

// EncodeNumber spells an arbitrary-precision decimal. It is the exact
// counterpart of DecodeWordsDecimalExact.
func EncodeNumber(d decimal.Decimal) (string, error) {
	if d.IsNegative() {
		return "", ErrOutOfRange
	}
	return encodeNumber(numdec.NewNumberFromDecimal(d))
}

func toNumber(x float64) (numdec.Number, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return numdec.Number{}, ErrOutOfRange
	}
	return numdec.NewNumber(x), nil
}

func encodeNumber(n numdec.Number) (string, error) {
	whole, ok := n.Whole()
	if !ok {
		return "", ErrOutOfRange
	}
	words := EncodeInteger(whole)

	digits := n.FractionDigits()
	if digits == "" {
		return words, nil
	}
	spoken := make([]string, len(digits))
	for i := 0; i < len(digits); i++ {
		spoken[i] = EncodeInteger(uint64(digits[i] - '0'))
	}
	return words + pointSeparator + strings.Join(spoken, " "), nil
}

// DecodeWordsDecimal parses a phrase such as "one point five" into a
// float64. The part before the first " point " is decoded like DecodeWords;
// every word after it must be a single digit word ("zero" to "nine").
func DecodeWordsDecimal(s string) (float64, error) {
	d, err := DecodeWordsDecimalExact(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// DecodeWordsDecimalExact is DecodeWordsDecimal without the float64
// rounding.
func DecodeWordsDecimalExact(s string) (decimal.Decimal, error) {
	phrase := strings.ToLower(strings.TrimSpace(s))
	intPhrase, fracPhrase, hasFraction := strings.Cut(phrase, pointSeparator)

	intTokens := strings.Fields(intPhrase)
	whole, err := decodeTokens(intTokens, 0)
	if err != nil {
		return decimal.Zero, err
	}
	if !hasFraction {
		n, _ := numdec.NewNumberFromParts(whole, "")
		return n.Decimal, nil
	}

	// token positions continue after the integer words and "point"
	offset := len(intTokens) + 1
	var digits strings.Builder
	for i, tok := range strings.Fields(fracPhrase) {
		value, ok := wordValues[tok]
		if !ok || value > 9 {
			return decimal.Zero, &DecodeError{Token: tok, Index: offset + i, Err: ErrUnknownToken}
		}
		digits.WriteByte(byte('0' + value))
	}
	if digits.Len() == 0 {
		return decimal.Zero, &DecodeError{Err: ErrMalformedFraction}
	}

	n, err := numdec.NewNumberFromParts(whole, digits.String())
	if err != nil {
		return decimal.Zero, &DecodeError{Token: digits.String(), Index: offset, Err: ErrMalformedFraction}
	}
	return n.Decimal, nil
}
