package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thexabd/wordle-hard/wordle"
)

func newTestGame(t *testing.T, dictionary ...string) *wordle.Game {
	t.Helper()
	game, err := wordle.New(5, dictionary)
	assert.NoError(t, err)
	return game
}

func TestPlaySolvesTarget(t *testing.T) {
	game := newTestGame(t, "crane", "audio", "alarm", "brave", "grace", "stone")
	s := New(game, nil, rand.New(rand.NewSource(42)))

	out, err := s.Play("crane", "audio")
	assert := assert.New(t)
	assert.NoError(err)
	assert.True(out.Solved)
	assert.Equal(out.Guesses, len(out.Trace))

	// the forced opener and its feedback lead the trace
	assert.Equal(Step{Guess: "audio", Feedback: "10000"}, out.Trace[0])
	last := out.Trace[len(out.Trace)-1]
	assert.Equal(wordle.Word("crane"), last.Guess)
	assert.True(game.IsWinning(last.Feedback))
}

// After audio/10000 every surviving candidate contains 'a' away from
// position 0. The opening round must eliminate the rest.
func TestPlayNarrowsAfterFirstGuess(t *testing.T) {
	game := newTestGame(t, "crane", "audio", "alarm", "brave", "grace", "stone")
	fb, err := game.Response("audio", "crane")
	assert.NoError(t, err)
	assert.Equal(t, wordle.Feedback("10000"), fb)

	narrowed := Narrow("audio", fb, game.Words)
	assert.ElementsMatch(t, ws("crane", "brave", "grace"), narrowed)
}

func TestPlayWinningRoundSkipsUpdates(t *testing.T) {
	game := newTestGame(t, "crane", "slate")
	s := New(game, nil, rand.New(rand.NewSource(1)))

	out, err := s.Play("crane", "crane")
	assert := assert.New(t)
	assert.NoError(err)
	assert.True(out.Solved)
	assert.Equal(1, out.Guesses)
	assert.Equal([]Step{{Guess: "crane", Feedback: "22222"}}, out.Trace)
}

func TestPlayEveryTargetSolvable(t *testing.T) {
	game := newTestGame(t,
		"crane", "slate", "speed", "erase", "terse", "theme", "cable",
		"pride", "sweet", "moist", "occur", "elite", "audio", "alarm")
	for _, target := range game.Words {
		s := New(game, nil, rand.New(rand.NewSource(7)))
		out, err := s.Play(target, "")
		assert.NoError(t, err, "target %s", target)
		assert.True(t, out.Solved, "target %s", target)
		assert.Equal(t, target, out.Trace[len(out.Trace)-1].Guess)
	}
}

// A target outside the candidate pool produces feedback no candidate can
// satisfy for long; the loop must report exhaustion instead of spinning.
func TestPlayCandidatesExhausted(t *testing.T) {
	game := newTestGame(t, "abcde", "fghij")
	s := New(game, nil, rand.New(rand.NewSource(1)))

	out, err := s.Play("zzzzz", "")
	assert.ErrorIs(t, err, ErrCandidatesExhausted)
	assert.False(t, out.Solved)
}

func TestPlayRejectsBadWordLength(t *testing.T) {
	game := newTestGame(t, "crane")
	s := New(game, nil, nil)

	_, err := s.Play("toolong", "")
	assert.ErrorIs(t, err, wordle.ErrWordLength)
	_, err = s.Play("crane", "abc")
	assert.ErrorIs(t, err, wordle.ErrWordLength)
}
