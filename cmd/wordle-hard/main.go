package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/thexabd/wordle-hard/batch"
	"github.com/thexabd/wordle-hard/solver"
	"github.com/thexabd/wordle-hard/strategy"
	"github.com/thexabd/wordle-hard/wordle"
	"github.com/thexabd/wordle-hard/words"
)

const wordLength = 5

type GlobalConfiguration struct {
	dictionary *words.Dictionary
	game       *wordle.Game
	progress   bool
	workers    int
}

func globalConfiguration(answersPath, allowedPath string, count int, progress bool, workers int) (GlobalConfiguration, error) {
	dictionary, err := words.Load(wordLength, answersPath, allowedPath)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	dictionary = dictionary.Truncate(count)
	game := &wordle.Game{K: wordLength, Words: dictionary.Answers()}
	return GlobalConfiguration{
		dictionary: dictionary,
		game:       game,
		progress:   progress,
		workers:    workers,
	}, nil
}

// newScorer maps a solver name to a per-game scorer factory. A nil factory
// means uniformly random guesses.
func newScorer(name string) (batch.ScorerFactory, error) {
	switch name {
	case "random":
		return nil, nil
	case "frequency":
		return func(g *wordle.Game) solver.Scorer {
			return strategy.NewFrequency(g.Words)
		}, nil
	case "infogain":
		return func(g *wordle.Game) solver.Scorer {
			return strategy.NewInfoGain(g)
		}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q (random/frequency/infogain)", name)
	}
}

// solveBatch checks a first guess against many targets, the way the
// original checks first-guess performance over the whole answer list.
func solveBatch(cfg GlobalConfiguration, solverName string, firstGuess string, targetStrings []string) error {
	factory, err := newScorer(solverName)
	if err != nil {
		return err
	}
	targets := cfg.game.Words
	if len(targetStrings) > 0 {
		targets = targets[:0:0]
		for _, s := range targetStrings {
			target := wordle.Word(s)
			if !cfg.dictionary.IsAnswer(target) {
				return fmt.Errorf("target not in answer list: %s", s)
			}
			targets = append(targets, target)
		}
	}
	if firstGuess != "" && !cfg.dictionary.Contains(wordle.Word(firstGuess)) {
		return fmt.Errorf("first guess not in dictionary: %s", firstGuess)
	}
	log.Info().
		Str("solver", solverName).
		Str("first", firstGuess).
		Int("targets", len(targets)).
		Msg("starting batch evaluation")

	stats := batch.Evaluate(cfg.game, targets, batch.Config{
		FirstGuess: wordle.Word(firstGuess),
		NewScorer:  factory,
		Workers:    cfg.workers,
		Progress:   cfg.progress,
		Seed:       time.Now().UnixNano(),
	})
	fmt.Println(stats.String())
	return nil
}

// playGame plays a single game against a known target and prints the trace.
func playGame(cfg GlobalConfiguration, solverName string, firstGuess string, targetString string) error {
	factory, err := newScorer(solverName)
	if err != nil {
		return err
	}
	target := wordle.Word(targetString)
	if !cfg.dictionary.IsAnswer(target) {
		return fmt.Errorf("target not in answer list: %s", targetString)
	}
	if firstGuess != "" && !cfg.dictionary.Contains(wordle.Word(firstGuess)) {
		return fmt.Errorf("first guess not in dictionary: %s", firstGuess)
	}
	var scorer solver.Scorer
	if factory != nil {
		scorer = factory(cfg.game)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	out, err := solver.New(cfg.game, scorer, rng).Play(target, wordle.Word(firstGuess))
	for i, step := range out.Trace {
		if scorer != nil {
			fmt.Printf("%d: %s %s (score %.2f)\n", i+1, step.Guess, step.Feedback, step.Score)
		} else {
			fmt.Printf("%d: %s %s\n", i+1, step.Guess, step.Feedback)
		}
	}
	if err != nil {
		return err
	}
	fmt.Printf("solved %s in %d guesses\n", target, out.Guesses)
	return nil
}

// topGuesses prints every allowed guess ranked by its initial score.
func topGuesses(cfg GlobalConfiguration, solverName string, limit int) error {
	factory, err := newScorer(solverName)
	if err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("top needs a scoring solver (frequency/infogain)")
	}
	scorer := factory(cfg.game)

	type wordScore struct {
		word  wordle.Word
		score float64
	}
	scores := make([]wordScore, 0, cfg.dictionary.Len())
	for _, w := range cfg.dictionary.AllWords() {
		scores = append(scores, wordScore{word: w, score: scorer.Score(w)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].word < scores[j].word
	})
	if limit > 0 && limit < len(scores) {
		scores = scores[:limit]
	}
	for _, ws := range scores {
		fmt.Printf("%s\t%.4f\n", ws.word, ws.score)
	}
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	answersPath := ""
	allowedPath := ""
	logLevel := "info"
	count := 0
	progress := false
	profile := false
	workers := 1
	solverName := "frequency"
	firstWord := ""
	limit := 0

	cmd := &cli.Command{
		Name:  "wordle-hard",
		Usage: "hard-mode wordle solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "answers",
				Usage:       "file with canonical answer words, one per line",
				Destination: &answersPath,
			},
			&cli.StringFlag{
				Name:        "allowed",
				Usage:       "file with extra allowed guess words, one per line",
				Destination: &allowedPath,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       1,
				Aliases:     []string{"w"},
				Usage:       "games to run in parallel",
				Destination: &workers,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "zerolog level (debug/info/warn/error)",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "solver",
				Value:       "frequency",
				Aliases:     []string{"s"},
				Usage:       "guess selection: random, frequency or infogain",
				Destination: &solverName,
			},
			&cli.StringFlag{
				Name:        "first",
				Value:       "",
				Aliases:     []string{"f"},
				Usage:       "fixed first word to guess, e.g. raise",
				Destination: &firstWord,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if lvl, err := zerolog.ParseLevel(logLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name: "solve",
				Usage: `solve [target]...
				Play one game per target word and report guess-count statistics.
				With no targets, every word in the answer list is used once.
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					cfg, err := globalConfiguration(answersPath, allowedPath, count, progress, workers)
					if err != nil {
						return err
					}
					return solveBatch(cfg, solverName, firstWord, cmd.Args().Slice())
				},
			},
			{
				Name: "play",
				Usage: `play target
				Play a single game against a known target and print the trace.
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return cli.Exit("must supply exactly one target word", 1)
					}
					cfg, err := globalConfiguration(answersPath, allowedPath, count, progress, workers)
					if err != nil {
						return err
					}
					return playGame(cfg, solverName, firstWord, cmd.Args().First())
				},
			},
			{
				Name: "top",
				Usage: `top
				Rank all allowed guess words by their initial score.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "limit",
						Value:       0,
						Aliases:     []string{"n"},
						Usage:       "print only the best n words, 0 is all",
						Destination: &limit,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := globalConfiguration(answersPath, allowedPath, count, progress, workers)
					if err != nil {
						return err
					}
					return topGuesses(cfg, solverName, limit)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
