// Package strategy provides pluggable guess scorers for the solver:
// a letter-frequency heuristic and an information-gain ranking. Both
// recompute from the live candidate set as the game narrows.
package strategy

import (
	"github.com/thexabd/wordle-hard/wordle"
)

// Frequency scores a word by how many candidate words share its letters.
// Each word contributes its distinct letters once, and a letter present in
// every candidate is worth nothing (the count is taken modulo the
// candidate total), so saturated letters stop steering the pick.
type Frequency struct {
	freq [26]int
}

func NewFrequency(candidates []wordle.Word) *Frequency {
	f := &Frequency{}
	f.SetCandidates(candidates)
	return f
}

// SetCandidates recomputes the letter frequencies.
func (f *Frequency) SetCandidates(candidates []wordle.Word) {
	var freq [26]int
	for _, w := range candidates {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			c := w[i] - 'a'
			if !seen[c] {
				seen[c] = true
				freq[c]++
			}
		}
	}
	if len(candidates) > 0 {
		for c := range freq {
			freq[c] %= len(candidates)
		}
	}
	f.freq = freq
}

// Score sums the frequencies of the distinct letters of w.
func (f *Frequency) Score(w wordle.Word) float64 {
	var seen [26]bool
	score := 0
	for i := 0; i < len(w); i++ {
		c := w[i] - 'a'
		if !seen[c] {
			seen[c] = true
			score += f.freq[c]
		}
	}
	return float64(score)
}
