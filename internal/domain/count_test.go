package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRemoveCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"", 1},
		{"abc", 1},
		{"  7", 7},
		{"12abc", 12},
		{"+4", 4},
		{"0", 1},
		{"-5", 1},
		{"-", 1},
		{"1.9", 1},
		{"99999999999999999999999", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRemoveCount(tt.raw))
		})
	}
}

func TestClampRemoveCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, ClampRemoveCount(-3))
	assert.Equal(t, 1, ClampRemoveCount(0))
	assert.Equal(t, 8, ClampRemoveCount(8))
}
