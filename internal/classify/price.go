package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the valid numeric prefix of an already-stripped
// string, e.g. "1.2" out of "1.2.3".
var leadingNumber = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)`)

// Price extracts a non-negative numeric value from a free-form price string.
// Every rune that is not a digit or a decimal point is stripped, then the
// leading valid numeric prefix of the remainder is parsed. Anything that
// still fails to parse degrades to 0; the function never errors.
//
//	Price("$1,234.56") == 1234.56
//	Price("Free")      == 0
//	Price("")          == 0
func Price(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	match := leadingNumber.FindString(b.String())
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}
