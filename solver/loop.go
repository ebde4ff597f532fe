package solver

import (
	"errors"
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/thexabd/wordle-hard/wordle"
)

// ErrCandidatesExhausted means narrowing emptied the candidate set without
// a win. The true target is always consistent with honest feedback, so
// this points at an inconsistent feedback sequence. Reported as a failed
// game, not a crash.
var ErrCandidatesExhausted = errors.New("no more available candidates")

// Step is one (guess, feedback) entry of the game trace. Score is the
// scorer's rating of the guess at selection time, zero without a scorer.
type Step struct {
	Guess    wordle.Word
	Feedback wordle.Feedback
	Score    float64
}

// Outcome is the result of one solved or failed game.
type Outcome struct {
	Guesses int
	Trace   []Step
	Solved  bool
}

// Solver plays whole games of hard-mode wordle against a known target.
// Scorer is optional; without one guesses are picked at random. A Solver
// owns no per-game state, but a stateful Scorer ties it to one game at a
// time.
type Solver struct {
	Game   *wordle.Game
	Scorer Scorer
	Rand   *rand.Rand
}

func New(game *wordle.Game, scorer Scorer, rng *rand.Rand) *Solver {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Solver{Game: game, Scorer: scorer, Rand: rng}
}

// Play runs one game to completion: select a guess, score it against the
// target, fold the feedback into the constraint state and narrow the
// candidates, until the target is hit or no candidate survives. firstGuess
// may be empty; when given it is played as-is on round one without a
// legality check. The winning round leaves state and candidates untouched.
func (s *Solver) Play(target, firstGuess wordle.Word) (Outcome, error) {
	if err := s.Game.CheckWord(target); err != nil {
		return Outcome{}, err
	}
	if firstGuess != "" {
		if err := s.Game.CheckWord(firstGuess); err != nil {
			return Outcome{}, err
		}
	}

	state := NewConstraintState(s.Game.K)
	candidates := make([]wordle.Word, len(s.Game.Words))
	copy(candidates, s.Game.Words)
	attempts := mapset.NewThreadUnsafeSet[wordle.Word]()
	s.notify(candidates)

	out := Outcome{}
	for len(candidates) >= 1 {
		out.Guesses++

		var guess wordle.Word
		var score float64
		if out.Guesses == 1 && firstGuess != "" {
			guess = firstGuess
			if s.Scorer != nil {
				score = s.Scorer.Score(guess)
			}
		} else {
			var err error
			guess, score, err = SelectGuess(candidates, attempts, state, s.Scorer, s.Rand)
			if err != nil {
				return out, err
			}
		}

		fb, err := s.Game.Response(guess, target)
		if err != nil {
			return out, err
		}
		out.Trace = append(out.Trace, Step{Guess: guess, Feedback: fb, Score: score})
		if s.Game.IsWinning(fb) {
			out.Solved = true
			return out, nil
		}

		state.Update(guess, fb)
		candidates = Narrow(guess, fb, candidates)
		attempts.Add(guess)
		if len(candidates) > 0 {
			s.notify(candidates)
		}
	}
	return out, ErrCandidatesExhausted
}

func (s *Solver) notify(candidates []wordle.Word) {
	if aware, ok := s.Scorer.(CandidateAware); ok {
		aware.SetCandidates(candidates)
	}
}
