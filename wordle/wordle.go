package wordle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Word is a lowercase k-letter dictionary word.
type Word string

// Feedback is a k-digit response string, one digit per guess letter.
type Feedback string

// Feedback digits.
const (
	Absent    byte = '0' // letter not in the target
	Misplaced byte = '1' // letter in the target, wrong position
	Correct   byte = '2' // letter in the target, right position
)

var ErrWordLength = errors.New("word length does not match game")

// Game holds the target pool for one word length and generates feedback
// for guesses. Safe for concurrent readers once constructed.
type Game struct {
	K     int
	Words []Word
}

// New keeps only the k-letter words from the input list.
func New(k int, words []string) (*Game, error) {
	if k < 1 {
		return nil, fmt.Errorf("bad word length %d", k)
	}
	g := &Game{K: k}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != k || !isLower(w) {
			continue
		}
		g.Words = append(g.Words, Word(w))
	}
	if len(g.Words) == 0 {
		return nil, fmt.Errorf("input words contain no %d-letter words", k)
	}
	return g, nil
}

func isLower(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// CheckWord rejects words whose length does not match the game.
func (g *Game) CheckWord(w Word) error {
	if len(w) != g.K {
		return fmt.Errorf("%q: %w", w, ErrWordLength)
	}
	return nil
}

// RandomTarget picks a target uniformly from the pool.
func (g *Game) RandomTarget(rng *rand.Rand) Word {
	return g.Words[rng.Intn(len(g.Words))]
}

// Response scores a guess against a target. First pass marks exact matches
// Correct, second pass marks remaining letters Misplaced while the target
// still has unmatched occurrences. Extra copies of a letter come out Absent.
func (g *Game) Response(guess, target Word) (Feedback, error) {
	if err := g.CheckWord(guess); err != nil {
		return "", err
	}
	if err := g.CheckWord(target); err != nil {
		return "", err
	}
	var remaining [26]int
	fb := make([]byte, g.K)
	for i := 0; i < g.K; i++ {
		if guess[i] == target[i] {
			fb[i] = Correct
		} else {
			fb[i] = Absent
			remaining[target[i]-'a']++
		}
	}
	for i := 0; i < g.K; i++ {
		if fb[i] != Correct && remaining[guess[i]-'a'] > 0 {
			fb[i] = Misplaced
			remaining[guess[i]-'a']--
		}
	}
	return Feedback(fb), nil
}

// IsWinning reports whether every position came back Correct.
func (g *Game) IsWinning(fb Feedback) bool {
	if len(fb) != g.K {
		return false
	}
	for i := 0; i < len(fb); i++ {
		if fb[i] != Correct {
			return false
		}
	}
	return true
}

// ValidFeedback reports whether fb is k digits of 0/1/2.
func (g *Game) ValidFeedback(fb Feedback) bool {
	if len(fb) != g.K {
		return false
	}
	for i := 0; i < len(fb); i++ {
		if fb[i] != Absent && fb[i] != Misplaced && fb[i] != Correct {
			return false
		}
	}
	return true
}

// Codes returns the number of distinct feedback codes, 3^k.
func (g *Game) Codes() int {
	n := 1
	for i := 0; i < g.K; i++ {
		n *= 3
	}
	return n
}

// Encode packs a feedback string into an integer, digit i weighted 3^i.
func (g *Game) Encode(fb Feedback) int {
	code, pow := 0, 1
	for i := 0; i < len(fb); i++ {
		code += int(fb[i]-'0') * pow
		pow *= 3
	}
	return code
}

// Decode is the inverse of Encode.
func (g *Game) Decode(code int) Feedback {
	fb := make([]byte, g.K)
	for i := 0; i < g.K; i++ {
		fb[i] = byte(code%3) + '0'
		code /= 3
	}
	return Feedback(fb)
}
