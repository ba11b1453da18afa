package regexdfa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimize(t *testing.T, pattern string) *Automaton {
	t.Helper()
	minimal, err := Minimize(determinize(t, pattern))
	require.NoError(t, err)
	return minimal
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		pattern        string
		numStates      int
		numTransitions int
	}{
		{"a", 2, 1},
		{"ab", 3, 2},
		{"a|b", 2, 2},
		{"a*", 1, 1},
		{"(a|b)*", 1, 2},
		{"a**", 1, 1},
		{"(a|b)*abb", 4, 8},
		{"(ab|cd)*", 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			minimal := minimize(t, tt.pattern)
			assert.Equal(t, tt.numStates, minimal.GetNumStates())
			assert.Equal(t, tt.numTransitions, minimal.GetNumTransitions())
			assert.True(t, minimal.IsDeterministic())
		})
	}
}

func TestMinimize_Classic(t *testing.T) {
	minimal := minimize(t, "(a|b)*abb")
	assert.Equal(t, 0, minimal.GetStart())
	assert.Equal(t, []int{3}, minimal.GetAcceptStates())
	assert.Equal(t, []Transition{
		{0, 1, 'a'},
		{0, 0, 'b'},
		{1, 1, 'a'},
		{1, 2, 'b'},
		{2, 1, 'a'},
		{2, 3, 'b'},
		{3, 1, 'a'},
		{3, 0, 'b'},
	}, slices.Collect(minimal.Transitions()))
}

func TestMinimize_MergesAcceptStates(t *testing.T) {
	minimal := minimize(t, "a|b")
	assert.Equal(t, []int{1}, minimal.GetAcceptStates())
	assert.Equal(t, []Transition{
		{0, 1, 'a'},
		{0, 1, 'b'},
	}, slices.Collect(minimal.Transitions()))
}

func TestMinimize_Idempotent(t *testing.T) {
	for _, pattern := range []string{"a", "a|b", "(a|b)*abb", "((a|b)*|c)*d", "(ab*)*", "(a|ab)(c|bcd)"} {
		t.Run(pattern, func(t *testing.T) {
			once := minimize(t, pattern)
			twice, err := Minimize(once)
			require.NoError(t, err)
			assert.Equal(t, once.GetNumStates(), twice.GetNumStates())
			assert.Equal(t, once.GetStart(), twice.GetStart())
			assert.Equal(t, once.GetAcceptStates(), twice.GetAcceptStates())
			assert.Equal(t, slices.Collect(once.Transitions()), slices.Collect(twice.Transitions()))
		})
	}
}

func TestMinimize_PreservesLanguage(t *testing.T) {
	inputs := []string{"", "a", "b", "ab", "ba", "abb", "aabb", "babb", "abab", "abba", "c", "cd", "ad"}
	for _, pattern := range []string{"(a|b)*abb", "((a|b)*|c)*d", "(ab*)*", "a*b*"} {
		t.Run(pattern, func(t *testing.T) {
			dfa := determinize(t, pattern)
			minimal, err := Minimize(dfa)
			require.NoError(t, err)
			for _, s := range inputs {
				assert.Equal(t, Run(dfa, s), Run(minimal, s), "input %q", s)
			}
		})
	}
}

func TestMinimize_DropsDeadStates(t *testing.T) {
	a := NewAutomaton()
	s0 := a.CreateState()
	s1 := a.CreateState()
	dead := a.CreateState()
	a.SetAccept(s1, true)
	require.NoError(t, a.AddTransition(s0, s1, 'a'))
	require.NoError(t, a.AddTransition(s0, dead, 'b'))
	require.NoError(t, a.AddTransition(dead, dead, 'b'))

	minimal, err := Minimize(a)
	require.NoError(t, err)
	assert.Equal(t, 2, minimal.GetNumStates())
	assert.Equal(t, []Transition{{0, 1, 'a'}}, slices.Collect(minimal.Transitions()))
}

func TestMinimize_EmptyLanguage(t *testing.T) {
	a := NewAutomaton()
	s0 := a.CreateState()
	s1 := a.CreateState()
	require.NoError(t, a.AddTransition(s0, s1, 'a'))

	minimal, err := Minimize(a)
	require.NoError(t, err)
	assert.Equal(t, 1, minimal.GetNumStates())
	assert.True(t, IsEmpty(minimal))

	minimal, err = Minimize(NewAutomaton())
	require.NoError(t, err)
	assert.Equal(t, 0, minimal.GetNumStates())
}

func TestMinimize_NonDeterministic(t *testing.T) {
	_, err := Minimize(buildNFA(t, "a|b"))
	assert.Error(t, err)
}

func TestSignature(t *testing.T) {
	a := &signature{group: 1, targets: []int{0, -1, 2}}
	b := &signature{group: 1, targets: []int{0, -1, 2}}
	c := &signature{group: 1, targets: []int{2, -1, 0}}
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
	assert.NotEqual(t, a.Hash(), c.Hash(), "the hash depends on symbol order")
	assert.False(t, a.Equals(NewStateSet(1)))
}
