package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateConfirmed(t *testing.T) {
	s := NewConstraintState(5)
	s.Update("crane", "20000")
	c, ok := s.Confirmed(0)
	assert.True(t, ok)
	assert.Equal(t, byte('c'), c)
	_, ok = s.Confirmed(1)
	assert.False(t, ok)

	// idempotent for the same letter
	s.Update("cloud", "20000")
	c, _ = s.Confirmed(0)
	assert.Equal(t, byte('c'), c)
}

func TestUpdateMisplaced(t *testing.T) {
	s := NewConstraintState(5)
	s.Update("crane", "01000")
	assert.True(t, s.MustContain().Contains('r'))
	assert.False(t, s.MustContain().Contains('c'))
}

func TestUpdateAbsentNoChange(t *testing.T) {
	s := NewConstraintState(5)
	s.Update("crane", "00000")
	assert.Equal(t, 0, s.MustContain().Cardinality())
	for i := range 5 {
		_, ok := s.Confirmed(i)
		assert.False(t, ok)
	}
}

// A letter already pinned at some position is not re-added as
// misplaced-only, in the same update or a later one.
func TestUpdateConfirmedLetterNotMisplaced(t *testing.T) {
	s := NewConstraintState(5)
	s.Update("sassy", "20010")
	c, _ := s.Confirmed(0)
	assert.Equal(t, byte('s'), c)
	assert.False(t, s.MustContain().Contains('s'))

	s.Update("xsxxx", "01000")
	assert.False(t, s.MustContain().Contains('s'))
}

func TestReset(t *testing.T) {
	s := NewConstraintState(5)
	s.Update("crane", "21000")
	s.Reset()
	_, ok := s.Confirmed(0)
	assert.False(t, ok)
	assert.Equal(t, 0, s.MustContain().Cardinality())
}
