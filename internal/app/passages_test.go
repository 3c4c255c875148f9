package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPassage(t *testing.T) {
	t.Parallel()

	for i := 0; i < 20; i++ {
		assert.Contains(t, SamplePassages, RandomPassage())
	}
}

func TestRandomPassageExcluding(t *testing.T) {
	t.Parallel()

	keep := SamplePassages[0]
	excluded := append([]string{}, SamplePassages[1:]...)

	for i := 0; i < 20; i++ {
		assert.Equal(t, keep, RandomPassageExcluding(excluded))
	}

	assert.Contains(t, SamplePassages, RandomPassageExcluding(SamplePassages))
}
