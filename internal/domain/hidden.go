package domain

import (
	"math/rand"
	"sort"
)

// Intner is the source of randomness used to pick word slots.
// *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRand draws from the math/rand global source.
var DefaultRand Intner = globalRand{}

// HiddenSet is the set of word slot indices currently hidden from view.
// A nil HiddenSet is an empty set.
type HiddenSet map[int]struct{}

// NewHiddenSet returns a set containing the given indices
func NewHiddenSet(indices ...int) HiddenSet {
	s := make(HiddenSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether index i is hidden
func (s HiddenSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of hidden slots
func (s HiddenSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s HiddenSet) Clone() HiddenSet {
	c := make(HiddenSet, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

// Sorted returns the hidden indices in ascending order
func (s HiddenSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// HideRandom returns a new set holding current plus up to count slots drawn
// uniformly without replacement from [0, total) minus current. Each draw is
// uniform over the slots still left in the pool. current is not modified.
// When nothing is left to hide, or total is not positive, current itself
// is returned.
func HideRandom(current HiddenSet, total, count int, rng Intner) HiddenSet {
	if total <= 0 {
		return current
	}
	if rng == nil {
		rng = DefaultRand
	}

	candidates := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !current.Has(i) {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return current
	}

	result := current.Clone()
	for n := 0; n < count && len(candidates) > 0; n++ {
		pick := rng.Intn(len(candidates))
		result[candidates[pick]] = struct{}{}

		// swap-remove keeps each draw O(1)
		last := len(candidates) - 1
		candidates[pick] = candidates[last]
		candidates = candidates[:last]
	}

	return result
}
