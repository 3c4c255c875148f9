package domain

import (
	"math"
	"strings"
)

// DefaultRemoveCount is the number of words hidden per step until the user
// picks another value.
const DefaultRemoveCount = 1

// ParseRemoveCount reads a count the way a browser number field reports it:
// leading whitespace, an optional sign, then decimal digits. Anything after
// the digits is ignored. Input without digits yields DefaultRemoveCount, and
// values below 1 are clamped to 1. Values too large for an int saturate.
func ParseRemoveCount(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	value := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := int(s[digits] - '0')
		if value > (math.MaxInt-d)/10 {
			value = math.MaxInt
		} else {
			value = value*10 + d
		}
		digits++
	}

	if digits == 0 {
		return DefaultRemoveCount
	}
	if negative {
		value = -value
	}
	return ClampRemoveCount(value)
}

// ClampRemoveCount raises counts below 1 to 1
func ClampRemoveCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
