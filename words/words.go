// Package words loads and indexes the solver's word lists: a small list of
// canonical answers and a large, de-duplicated superset of allowed guesses.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/thexabd/wordle-hard/wordle"
)

// Built-in defaults used when no list files are supplied.
//
//go:embed answers.txt
var embeddedAnswers string

//go:embed allowed.txt
var embeddedAllowed string

// Dictionary is an ordered word list with the canonical answers flagged.
// Answers come first, extra allowed guesses after, no duplicates. Read-only
// after construction and safe to share across parallel games.
type Dictionary struct {
	k       int
	words   []wordle.Word
	index   map[wordle.Word]int
	answers *bitset.BitSet // marks the canonical-answer prefix
}

// New builds a dictionary from answer words plus extra allowed guesses.
// Words of the wrong length or with non a-z letters are dropped; the
// allowed list may repeat answers, duplicates are skipped.
func New(k int, answers, allowed []string) (*Dictionary, error) {
	d := &Dictionary{k: k, index: make(map[wordle.Word]int)}
	for _, raw := range append(append([]string{}, answers...), allowed...) {
		w := wordle.Word(strings.ToLower(strings.TrimSpace(raw)))
		if len(w) != k || !lower(w) {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, fmt.Errorf("word lists contain no %d-letter words", k)
	}
	d.answers = bitset.New(uint(len(d.words)))
	for _, raw := range answers {
		w := wordle.Word(strings.ToLower(strings.TrimSpace(raw)))
		if i, ok := d.index[w]; ok {
			d.answers.Set(uint(i))
		}
	}
	if d.answers.Count() == 0 {
		return nil, fmt.Errorf("answer list contains no %d-letter words", k)
	}
	return d, nil
}

func lower(w wordle.Word) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Load reads the answer and allowed lists from files, falling back to the
// embedded defaults for any path left empty.
func Load(k int, answersPath, allowedPath string) (*Dictionary, error) {
	answers := splitWords(embeddedAnswers)
	allowed := splitWords(embeddedAllowed)
	var err error
	if answersPath != "" {
		if answers, err = ReadFile(answersPath); err != nil {
			return nil, err
		}
	}
	if allowedPath != "" {
		if allowed, err = ReadFile(allowedPath); err != nil {
			return nil, err
		}
	}
	return New(k, answers, allowed)
}

// ReadFile reads a line-delimited word list.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return words, nil
}

func splitWords(s string) []string {
	return strings.Fields(s)
}

// K returns the word length.
func (d *Dictionary) K() int { return d.k }

// Len returns the total number of words, answers included.
func (d *Dictionary) Len() int { return len(d.words) }

// AllWords returns every allowed guess word in order.
func (d *Dictionary) AllWords() []wordle.Word { return d.words }

// Answers returns the canonical answer words in order.
func (d *Dictionary) Answers() []wordle.Word {
	out := make([]wordle.Word, 0, d.answers.Count())
	for i, ok := d.answers.NextSet(0); ok; i, ok = d.answers.NextSet(i + 1) {
		out = append(out, d.words[i])
	}
	return out
}

// Contains reports whether w is an allowed guess.
func (d *Dictionary) Contains(w wordle.Word) bool {
	_, ok := d.index[w]
	return ok
}

// IsAnswer reports whether w is a canonical answer.
func (d *Dictionary) IsAnswer(w wordle.Word) bool {
	i, ok := d.index[w]
	return ok && d.answers.Test(uint(i))
}

// Truncate returns a dictionary limited to the first n words, for cutting
// down run time while testing. n <= 0 or past the end keeps everything.
func (d *Dictionary) Truncate(n int) *Dictionary {
	if n <= 0 || n >= len(d.words) {
		return d
	}
	var answers, allowed []string
	for _, w := range d.words[:n] {
		if d.IsAnswer(w) {
			answers = append(answers, string(w))
		} else {
			allowed = append(allowed, string(w))
		}
	}
	out, err := New(d.k, answers, allowed)
	if err != nil {
		return d
	}
	return out
}
