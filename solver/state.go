package solver

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/thexabd/wordle-hard/wordle"
)

// ConstraintState accumulates the letter facts learned during one game:
// letters proven at their exact position and letters proven present
// somewhere. One instance belongs to exactly one game at a time.
type ConstraintState struct {
	confirmed   []byte // one slot per position, 0 when unknown
	mustContain mapset.Set[byte]
}

func NewConstraintState(k int) *ConstraintState {
	return &ConstraintState{
		confirmed:   make([]byte, k),
		mustContain: mapset.NewThreadUnsafeSet[byte](),
	}
}

// Reset clears all accumulated facts for a new game.
func (s *ConstraintState) Reset() {
	for i := range s.confirmed {
		s.confirmed[i] = 0
	}
	s.mustContain.Clear()
}

// Update folds one guess/feedback pair into the state. A Correct position
// pins the letter there. A Misplaced letter joins the must-contain set
// unless it is already pinned at some position. Absent changes nothing.
func (s *ConstraintState) Update(guess wordle.Word, fb wordle.Feedback) {
	for i := 0; i < len(fb); i++ {
		switch fb[i] {
		case wordle.Correct:
			s.confirmed[i] = guess[i]
		case wordle.Misplaced:
			if !s.pinned(guess[i]) {
				s.mustContain.Add(guess[i])
			}
		}
	}
}

func (s *ConstraintState) pinned(letter byte) bool {
	for _, c := range s.confirmed {
		if c == letter {
			return true
		}
	}
	return false
}

// Confirmed returns the letter pinned at position i, or false.
func (s *ConstraintState) Confirmed(i int) (byte, bool) {
	return s.confirmed[i], s.confirmed[i] != 0
}

// MustContain returns the letters proven present but not yet pinned.
func (s *ConstraintState) MustContain() mapset.Set[byte] {
	return s.mustContain
}
