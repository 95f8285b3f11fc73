package numwords

import "strings"

var ones = [20]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// tens is indexed by the tens digit; entries 0 and 1 are covered by ones.
var tens = [10]string{
	2: "twenty",
	3: "thirty",
	4: "forty",
	5: "fifty",
	6: "sixty",
	7: "seventy",
	8: "eighty",
	9: "ninety",
}

// magnitudes is indexed by chunk position. A uint64 has at most seven
// chunks, so quintillion is the largest suffix ever needed.
var magnitudes = [7]string{
	1: "thousand",
	2: "million",
	3: "billion",
	4: "trillion",
	5: "quadrillion",
	6: "quintillion",
}

const hundred = 100

// wordValues is the reverse of the tables above plus "hundred".
var wordValues = buildWordValues()

func buildWordValues() map[string]uint64 {
	m := make(map[string]uint64, len(ones)+len(tens)+len(magnitudes)+1)
	for n, w := range ones {
		m[w] = uint64(n)
	}
	for d, w := range tens {
		if w != "" {
			m[w] = uint64(d) * 10
		}
	}
	m["hundred"] = hundred
	scale := uint64(1)
	for _, w := range magnitudes[1:] {
		scale *= 1000
		m[w] = scale
	}
	return m
}

// IsKnownWord reports whether w (in any case) is a number word the decoder
// understands.
func IsKnownWord(w string) bool {
	_, ok := wordValues[strings.ToLower(w)]
	return ok
}
