package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "a b c", []string{"a", "b", "c"}},
		{"empty text keeps one empty slot", "", []string{""}},
		{"double space yields empty slot", "a  b", []string{"a", "", "b"}},
		{"leading and trailing spaces", " a ", []string{"", "a", ""}},
		{"tabs and newlines are not delimiters", "a\tb\nc d", []string{"a\tb\nc", "d"}},
		{"single word", "fox", []string{"fox"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitWords(tt.text))
		})
	}
}
