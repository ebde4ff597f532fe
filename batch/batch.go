// Package batch runs the solver across many target words and aggregates
// guess-count statistics.
package batch

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/thexabd/wordle-hard/solver"
	"github.com/thexabd/wordle-hard/wordle"
)

// ScorerFactory builds a fresh scorer for one game. Scorers may carry
// per-game candidate tables, so parallel games never share one. A nil
// factory (or a factory returning nil) plays with random selection.
type ScorerFactory func(g *wordle.Game) solver.Scorer

type Config struct {
	FirstGuess wordle.Word
	NewScorer  ScorerFactory
	Workers    int // games run in parallel, min 1
	Progress   bool
	Seed       int64
}

// Stats aggregates guess counts over a batch of games. Failed games are
// counted separately and excluded from the guess statistics.
type Stats struct {
	Games     int
	Failures  int
	Mean      float64
	Min, Max  int
	Histogram map[int]int
}

// String renders the summary line: mean/min/max plus the per-count
// histogram in ascending order.
func (s Stats) String() string {
	if len(s.Histogram) == 0 {
		return fmt.Sprintf("Games: %d, Failures: %d", s.Games, s.Failures)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Mean: %.3f, Min: %d, Max: %d", s.Mean, s.Min, s.Max)
	b.WriteString(", Count of Guesses:")
	for i := s.Min; i <= s.Max; i++ {
		fmt.Fprintf(&b, " [%d] %d", i, s.Histogram[i])
	}
	if s.Failures > 0 {
		fmt.Fprintf(&b, ", Failures: %d", s.Failures)
	}
	return b.String()
}

type result struct {
	target  wordle.Word
	guesses int
	err     error
}

// Evaluate plays one game per target and aggregates the outcomes. Each
// game gets its own solver, scorer and RNG; the game's word pool is shared
// read-only, so games are safe to run in parallel.
func Evaluate(game *wordle.Game, targets []wordle.Word, cfg Config) Stats {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan wordle.Word)
	results := make(chan result)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed + int64(id)))
			for target := range jobs {
				var scorer solver.Scorer
				if cfg.NewScorer != nil {
					scorer = cfg.NewScorer(game)
				}
				out, err := solver.New(game, scorer, rng).Play(target, cfg.FirstGuess)
				results <- result{target: target, guesses: out.Guesses, err: err}
			}
		}(w)
	}
	go func() {
		for _, target := range targets {
			jobs <- target
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	bar := progressbar.DefaultSilent(int64(len(targets)))
	if cfg.Progress {
		bar = progressbar.Default(int64(len(targets)))
	}

	stats := Stats{Histogram: make(map[int]int)}
	var counts []int
	for r := range results {
		bar.Add(1)
		stats.Games++
		if r.err != nil {
			stats.Failures++
			log.Warn().Err(r.err).Str("target", string(r.target)).Msg("game failed")
			continue
		}
		stats.Histogram[r.guesses]++
		counts = append(counts, r.guesses)
	}
	if len(counts) == 0 {
		return stats
	}
	sort.Ints(counts)
	stats.Min = counts[0]
	stats.Max = counts[len(counts)-1]
	total := 0
	for _, c := range counts {
		total += c
	}
	stats.Mean = float64(total) / float64(len(counts))
	return stats
}
