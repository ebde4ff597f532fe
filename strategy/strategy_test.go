package strategy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thexabd/wordle-hard/solver"
	"github.com/thexabd/wordle-hard/wordle"
)

func ws(in ...string) []wordle.Word {
	out := make([]wordle.Word, len(in))
	for i, s := range in {
		out[i] = wordle.Word(s)
	}
	return out
}

func TestFrequencyScore(t *testing.T) {
	f := NewFrequency(ws("abide", "abode"))
	assert := assert.New(t)

	// a/b/d/e appear in both candidates, so their counts collapse to zero
	// modulo the candidate total; only i and o still discriminate.
	assert.Equal(1.0, f.Score("abide"))
	assert.Equal(1.0, f.Score("abode"))
	assert.Equal(2.0, f.Score("audio"))
	assert.Equal(0.0, f.Score("lynch"))
}

func TestFrequencyUniqueLettersOnly(t *testing.T) {
	f := NewFrequency(ws("salad", "sulky", "brine", "crepe"))
	// s=2, a=1, y=1: the repeated 's' and 'a' in "sassy" count once each,
	// otherwise the score would be 8
	assert.Equal(t, 4.0, f.Score("sassy"))
}

func TestFrequencySetCandidates(t *testing.T) {
	f := NewFrequency(ws("abide", "abode"))
	before := f.Score("audio")
	f.SetCandidates(ws("crane", "crone"))
	assert.NotEqual(t, before, f.Score("audio"))
}

func TestInfoGainScore(t *testing.T) {
	game, err := wordle.New(5, []string{"abcde", "fghij"})
	assert.NoError(t, err)
	s := NewInfoGain(game)

	// splits the two candidates into two feedback buckets
	assert.InDelta(t, math.Log(2), s.Score("abcde"), 1e-9)
	// indistinguishable outcome carries no information
	assert.InDelta(t, 0, s.Score("kmnop"), 1e-9)
}

func TestInfoGainSetCandidates(t *testing.T) {
	game, err := wordle.New(5, []string{"abcde", "fghij", "fghix"})
	assert.NoError(t, err)
	s := NewInfoGain(game)
	three := s.Score("abcde")

	s.SetCandidates(ws("abcde"))
	assert.InDelta(t, 0, s.Score("abcde"), 1e-9)
	assert.Greater(t, three, 0.0)
}

// The solver accepts both strategies end to end.
func TestStrategiesSolve(t *testing.T) {
	dictionary := []string{"crane", "slate", "grace", "brave", "stone", "audio", "theme"}
	game, err := wordle.New(5, dictionary)
	assert.NoError(t, err)

	for name, scorer := range map[string]solver.Scorer{
		"frequency": NewFrequency(game.Words),
		"infogain":  NewInfoGain(game),
	} {
		for _, target := range game.Words {
			s := solver.New(game, scorer, rand.New(rand.NewSource(1)))
			out, err := s.Play(target, "")
			assert.NoError(t, err, "%s target %s", name, target)
			assert.True(t, out.Solved, "%s target %s", name, target)
		}
	}
}
