package numwords

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownToken is returned when a phrase contains a word that is not
	// a number word, or a fraction word that is not a single digit.
	ErrUnknownToken = errors.New("unknown token")

	// ErrMalformedFraction is returned when the fraction digits after
	// "point" do not form a valid decimal literal.
	ErrMalformedFraction = errors.New("malformed fraction")

	// ErrOutOfRange is returned for values that cannot be represented:
	// negative, NaN or infinite inputs, and anything that does not fit in a
	// uint64.
	ErrOutOfRange = errors.New("value out of range")
)

// DecodeError describes where decoding a phrase failed.
type DecodeError struct {
	Token string // offending token, empty if the failure is not tied to one
	Index int    // zero-based token position within the phrase
	Err   error  // one of the sentinel errors above
}

func (e *DecodeError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Token, e.Index)
}

func (e *DecodeError) Unwrap() error { return e.Err }
