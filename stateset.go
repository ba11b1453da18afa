package regexdfa

import "github.com/bits-and-blooms/bitset"

var _ Hashable = &StateSet{}

// StateSet is a set of NFA states backed by a bitset sized to the NFA. Two sets are equal when they
// hold the same states, so a StateSet can key the subset construction's state map. A set must not
// be modified once it is used as a key.
type StateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

// NewStateSet creates an empty set for an automaton with numStates states.
func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
	}
}

// Add inserts state and reports whether it was absent.
func (s *StateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	s.hashUpdated = false
	return true
}

func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

// Intersects reports whether s and other share a state.
func (s *StateSet) Intersects(other *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(other) > 0
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(s.bits.Count())
	for k, ok := s.bits.NextSet(0); ok; k, ok = s.bits.NextSet(k + 1) {
		s.hashCode += mix(int(k))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(*StateSet)
	if !ok || s == nil || o == nil {
		return ok && s == o
	}
	return s.bits.Equal(o.bits)
}

// GetArray returns the states in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.bits.Count())
	for k, ok := s.bits.NextSet(0); ok; k, ok = s.bits.NextSet(k + 1) {
		values = append(values, int(k))
	}
	return values
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}
