package numwords

import (
	"math/bits"
	"strings"
)

// EncodeInteger spells n in English words, e.g. 1001 -> "one thousand one".
func EncodeInteger(n uint64) string {
	if n == 0 {
		return ones[0]
	}

	var parts []string
	for idx := 0; n > 0; idx++ {
		chunk := n % 1000
		n /= 1000
		if chunk == 0 {
			continue
		}
		words := encodeChunk(chunk)
		if idx > 0 {
			words += " " + magnitudes[idx]
		}
		parts = append(parts, words)
	}

	// chunks were collected least significant first
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// encodeChunk spells 1..999. Zero chunks are skipped by the caller.
func encodeChunk(n uint64) string {
	words := make([]string, 0, 3)
	if n >= 100 {
		words = append(words, ones[n/100]+" hundred")
		n %= 100
	}
	if n >= 20 {
		words = append(words, tens[n/10])
		n %= 10
	}
	if n > 0 {
		words = append(words, ones[n])
	}
	return strings.Join(words, " ")
}

// DecodeWords parses an English number phrase such as
// "Two Hundred Thirty Four Thousand" back into its value. Matching is
// case-insensitive and tokens are separated by any run of whitespace. An
// empty phrase decodes to zero.
func DecodeWords(s string) (uint64, error) {
	return decodeTokens(strings.Fields(strings.ToLower(s)), 0)
}

// decodeTokens runs the running-total accumulation over lowercase tokens.
// offset shifts the token positions reported in errors.
func decodeTokens(tokens []string, offset int) (uint64, error) {
	var total, current uint64
	for i, tok := range tokens {
		value, ok := wordValues[tok]
		if !ok {
			return 0, &DecodeError{Token: tok, Index: offset + i, Err: ErrUnknownToken}
		}

		var overflow bool
		switch {
		case value == hundred:
			current, overflow = mul(current, hundred)
		case value >= 1000:
			if current, overflow = mul(current, value); !overflow {
				total, overflow = add(total, current)
				current = 0
			}
		default:
			current, overflow = add(current, value)
		}
		if overflow {
			return 0, &DecodeError{Token: tok, Index: offset + i, Err: ErrOutOfRange}
		}
	}

	total, overflow := add(total, current)
	if overflow {
		return 0, &DecodeError{Err: ErrOutOfRange}
	}
	return total, nil
}

func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

func add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry != 0
}
