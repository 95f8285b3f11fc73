package decimal

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Number represents a non-negative decimal value that is spoken as a whole
// part followed by its fractional digits.
type Number struct {
	decimal.Decimal
}

// NewNumber creates a Number from a float64 using the shortest decimal
// representation that converts back to the same float64.
func NewNumber(value float64) Number {
	return Number{decimal.NewFromFloat(value)}
}

// NewNumberFromDecimal creates a new Number from a decimal.Decimal
func NewNumberFromDecimal(d decimal.Decimal) Number {
	return Number{d}
}

// NewNumberFromString creates a new Number from a string
func NewNumberFromString(value string) (Number, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Number{}, err
	}
	return Number{d}, nil
}

// NewNumberFromParts joins a whole part and a string of fraction digits,
// so (12, "05") becomes 12.05. An empty digit string yields the whole part.
func NewNumberFromParts(whole uint64, digits string) (Number, error) {
	w := decimal.NewFromBigInt(new(big.Int).SetUint64(whole), 0)
	if digits == "" {
		return Number{w}, nil
	}
	frac, err := decimal.NewFromString("0." + digits)
	if err != nil {
		return Number{}, err
	}
	return Number{w.Add(frac)}, nil
}

// Round rounds to the given number of fraction digits, half away from zero.
func (n Number) Round(places int32) Number {
	return Number{n.Decimal.Round(places)}
}

// Whole returns the integer part truncated toward zero. ok is false when
// the integer part does not fit in a uint64 or the number is negative.
func (n Number) Whole() (whole uint64, ok bool) {
	i := n.Decimal.Truncate(0).BigInt()
	if !i.IsUint64() {
		return 0, false
	}
	return i.Uint64(), true
}

// FractionDigits returns the digits after the decimal point with trailing
// zeros removed, or "" when the number is integral.
func (n Number) FractionDigits() string {
	s := n.Decimal.String()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return ""
	}
	return strings.TrimRight(s[dot+1:], "0")
}

// IsIntegral reports whether the number has no fractional part.
func (n Number) IsIntegral() bool {
	return n.FractionDigits() == ""
}

// IsNegative checks if the number is below zero
func (n Number) IsNegative() bool {
	return n.Decimal.IsNegative()
}
