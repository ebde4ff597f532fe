package solver

import (
	"errors"
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/thexabd/wordle-hard/wordle"
)

// ErrNoLegalGuess means no unattempted word satisfies the hard-mode
// constraints. Fatal to the current game.
var ErrNoLegalGuess = errors.New("no legal guess available")

// Scorer ranks guess words, higher is better. Implementations are opaque
// to the solver.
type Scorer interface {
	Score(w wordle.Word) float64
}

// CandidateAware is implemented by scorers that recompute internal tables
// from the live candidate set. The solver loop calls SetCandidates at game
// start and after every narrowing round.
type CandidateAware interface {
	SetCandidates(candidates []wordle.Word)
}

// IsLegal is the hard-mode predicate: every pinned position must hold its
// letter and every must-contain letter must appear somewhere in the word.
// Pure with respect to state.
func IsLegal(w wordle.Word, state *ConstraintState) bool {
	for i := 0; i < len(w); i++ {
		if c, ok := state.Confirmed(i); ok && w[i] != c {
			return false
		}
	}
	missing := false
	state.MustContain().Each(func(letter byte) bool {
		if !containsByte(w, letter) {
			missing = true
		}
		return missing // stop on the first missing letter
	})
	return !missing
}

func containsByte(w wordle.Word, letter byte) bool {
	for i := 0; i < len(w); i++ {
		if w[i] == letter {
			return true
		}
	}
	return false
}

// SelectGuess picks the next guess from the pool words that are both
// unattempted and legal under state. With a scorer the best-scoring word
// wins, ties going to the lexically smallest. Without one the pick is
// uniformly random.
func SelectGuess(pool []wordle.Word, attempts mapset.Set[wordle.Word], state *ConstraintState, scorer Scorer, rng *rand.Rand) (wordle.Word, float64, error) {
	legal := make([]wordle.Word, 0, len(pool))
	for _, w := range pool {
		if !attempts.Contains(w) && IsLegal(w, state) {
			legal = append(legal, w)
		}
	}
	if len(legal) == 0 {
		return "", 0, ErrNoLegalGuess
	}
	if scorer == nil {
		return legal[rng.Intn(len(legal))], 0, nil
	}
	best, bestScore := legal[0], scorer.Score(legal[0])
	for _, w := range legal[1:] {
		score := scorer.Score(w)
		if score > bestScore || (score == bestScore && w < best) {
			best, bestScore = w, score
		}
	}
	return best, bestScore, nil
}
