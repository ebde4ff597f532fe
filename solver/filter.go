package solver

import (
	"strings"

	"github.com/thexabd/wordle-hard/wordle"
)

// Narrow reduces a candidate set to the words still consistent with one
// guess/feedback pair. The result is always a subset of the input and the
// guess itself is dropped from it. The tricky part is duplicated letters in
// the guess: a letter may come back Absent in one slot while another copy
// is Correct or Misplaced, which means "the target has fewer copies than
// the guess", not "the letter is missing".
func Narrow(guess wordle.Word, fb wordle.Feedback, candidates []wordle.Word) []wordle.Word {
	occ := make(map[byte]int, len(guess))
	for i := 0; i < len(guess); i++ {
		occ[guess[i]]++
	}

	// Minimum copies of each duplicated letter the target must hold: one
	// per Correct or Misplaced occurrence in the guess.
	required := make(map[byte]int)
	for i := 0; i < len(guess); i++ {
		if (fb[i] == wordle.Correct || fb[i] == wordle.Misplaced) && occ[guess[i]] > 1 {
			required[guess[i]]++
		}
	}

	// An Absent slot eliminates words containing the letter only when no
	// other copy of that letter scored Correct or Misplaced.
	removable := func(letter byte) bool {
		for i := 0; i < len(guess); i++ {
			if guess[i] == letter && (fb[i] == wordle.Correct || fb[i] == wordle.Misplaced) {
				return false
			}
		}
		return true
	}

	keep := func(cand wordle.Word) bool {
		for i := 0; i < len(fb); i++ {
			switch fb[i] {
			case wordle.Correct:
				if cand[i] != guess[i] {
					return false
				}
			case wordle.Misplaced:
				if !strings.Contains(string(cand), string(guess[i])) || cand[i] == guess[i] {
					return false
				}
			case wordle.Absent:
				if removable(guess[i]) && strings.Contains(string(cand), string(guess[i])) {
					return false
				}
			}
		}
		for letter, need := range required {
			if strings.Count(string(cand), string(letter)) < need {
				return false
			}
		}
		return true
	}

	out := make([]wordle.Word, 0, len(candidates))
	for _, cand := range candidates {
		if cand != guess && keep(cand) {
			out = append(out, cand)
		}
	}
	return out
}
