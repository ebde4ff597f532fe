package strategy

import (
	"math"

	"github.com/thexabd/wordle-hard/wordle"
)

// InfoGain scores a word by the Shannon entropy of its feedback
// distribution over the live candidate set: the more evenly a guess splits
// the remaining candidates across feedback codes, the higher it ranks.
// Feedback codes are bucketed through the game's base-3 encoding.
type InfoGain struct {
	game       *wordle.Game
	candidates []wordle.Word
	buckets    []int // reused across Score calls, len 3^k
}

func NewInfoGain(game *wordle.Game) *InfoGain {
	return &InfoGain{
		game:       game,
		candidates: game.Words,
		buckets:    make([]int, game.Codes()),
	}
}

// SetCandidates swaps in the current candidate set.
func (s *InfoGain) SetCandidates(candidates []wordle.Word) {
	s.candidates = candidates
}

// Score computes -sum(p*ln(p)) over the feedback buckets of w.
func (s *InfoGain) Score(w wordle.Word) float64 {
	for i := range s.buckets {
		s.buckets[i] = 0
	}
	for _, target := range s.candidates {
		fb, err := s.game.Response(w, target)
		if err != nil {
			return 0
		}
		s.buckets[s.game.Encode(fb)]++
	}
	total := float64(len(s.candidates))
	if total == 0 {
		return 0
	}
	score := 0.0
	for _, n := range s.buckets {
		if n > 0 {
			p := float64(n) / total
			score -= p * math.Log(p)
		}
	}
	return score
}
