package app

import "math/rand"

// SamplePassages are short texts for practising without pasting anything
var SamplePassages = []string{
	// Poetry
	"Two roads diverged in a yellow wood, and sorry I could not travel both and be one traveler, long I stood",
	"Hope is the thing with feathers that perches in the soul, and sings the tune without the words, and never stops at all",
	"I wandered lonely as a cloud that floats on high o'er vales and hills, when all at once I saw a crowd, a host, of golden daffodils",
	"Shall I compare thee to a summer's day? Thou art more lovely and more temperate",

	// Speeches
	"Four score and seven years ago our fathers brought forth on this continent, a new nation, conceived in Liberty, and dedicated to the proposition that all men are created equal",
	"We shall fight on the beaches, we shall fight on the landing grounds, we shall fight in the fields and in the streets",

	// Prose
	"It was the best of times, it was the worst of times, it was the age of wisdom, it was the age of foolishness",
	"In a hole in the ground there lived a hobbit",
	"Call me Ishmael. Some years ago, never mind how long precisely, having little or no money in my purse, I thought I would sail about a little and see the watery part of the world",

	// Science
	"The mitochondria is the powerhouse of the cell",
	"Energy cannot be created or destroyed, only converted from one form to another",
}

// RandomPassage returns a random passage from the sample list
func RandomPassage() string {
	return SamplePassages[rand.Intn(len(SamplePassages))]
}

// RandomPassageExcluding returns a random passage that's not in the excluded list
func RandomPassageExcluding(excluded []string) string {
	excludeMap := make(map[string]bool)
	for _, p := range excluded {
		excludeMap[p] = true
	}

	candidates := make([]string, 0, len(SamplePassages))
	for _, p := range SamplePassages {
		if !excludeMap[p] {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		return RandomPassage()
	}
	return candidates[rand.Intn(len(candidates))]
}
