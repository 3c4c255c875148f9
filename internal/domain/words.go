package domain

import "strings"

// WordDelimiter is the only character that separates word slots. Tabs,
// newlines and runs of spaces are not treated specially: "a  b" has an
// empty slot in the middle.
const WordDelimiter = " "

// SplitWords splits text into word slots on single spaces.
// An empty text yields a single empty slot.
func SplitWords(text string) []string {
	return strings.Split(text, WordDelimiter)
}
