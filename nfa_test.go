package regexdfa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNFA(t *testing.T, pattern string) *Automaton {
	t.Helper()
	postfix, err := ToPostfix(pattern)
	require.NoError(t, err)
	nfa, err := BuildNFA(postfix)
	require.NoError(t, err)
	return nfa
}

func TestBuildNFA(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		numStates   int
		start       int
		accept      []int
		transitions []Transition
	}{
		{
			name:      "literal",
			pattern:   "a",
			numStates: 2,
			start:     0,
			accept:    []int{1},
			transitions: []Transition{
				{0, 1, 'a'},
			},
		},
		{
			name:      "union",
			pattern:   "a|b",
			numStates: 6,
			start:     4,
			accept:    []int{5},
			transitions: []Transition{
				{0, 1, 'a'},
				{2, 3, 'b'},
				{4, 0, Epsilon},
				{4, 2, Epsilon},
				{1, 5, Epsilon},
				{3, 5, Epsilon},
			},
		},
		{
			name:      "concatenation allocates nothing",
			pattern:   "ab",
			numStates: 4,
			start:     0,
			accept:    []int{3},
			transitions: []Transition{
				{0, 1, 'a'},
				{2, 3, 'b'},
				{1, 2, Epsilon},
			},
		},
		{
			name:      "star",
			pattern:   "a*",
			numStates: 4,
			start:     2,
			accept:    []int{3},
			transitions: []Transition{
				{0, 1, 'a'},
				{2, 0, Epsilon},
				{2, 3, Epsilon},
				{1, 2, Epsilon},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfa := buildNFA(t, tt.pattern)
			assert.Equal(t, tt.numStates, nfa.GetNumStates())
			assert.Equal(t, tt.start, nfa.GetStart())
			assert.Equal(t, tt.accept, nfa.GetAcceptStates())
			assert.Equal(t, tt.transitions, slices.Collect(nfa.Transitions()))
		})
	}
}

func TestBuildNFA_Empty(t *testing.T) {
	nfa, err := BuildNFA(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, nfa.GetNumStates())
	assert.Equal(t, -1, nfa.GetStart())
	assert.Empty(t, nfa.GetAcceptStates())
	assert.True(t, IsEmpty(nfa))
}

func TestBuildNFA_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		postfix []Token
		message string
	}{
		{
			name:    "union without operands",
			postfix: Tokenize("|"),
			message: "'|' at position 0 is missing an operand",
		},
		{
			name:    "union with one operand",
			postfix: []Token{{Kind: TokenLiteral, Symbol: 'a'}, {Kind: TokenUnion, Pos: 1}},
			message: "'|' at position 1 is missing an operand",
		},
		{
			name:    "star without operand",
			postfix: Tokenize("*"),
			message: "'*' at position 0 is missing an operand",
		},
		{
			name:    "concatenation with one operand",
			postfix: []Token{{Kind: TokenLiteral, Symbol: 'a'}, {Kind: TokenConcat, Pos: 1}},
			message: "concatenation at position 1 is missing an operand",
		},
		{
			name:    "grouping token",
			postfix: []Token{{Kind: TokenLParen, Pos: 0}},
			message: "unexpected '(' at position 0",
		},
		{
			name:    "dangling operands",
			postfix: Tokenize("ab"),
			message: "2 operands are not joined by an operator",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfa, err := BuildNFA(tt.postfix)
			assert.Nil(t, nfa)
			require.Error(t, err)
			assert.True(t, IsMalformedPattern(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBuildNFA_Patterns(t *testing.T) {
	for _, pattern := range []string{"|a", "a|", "*a", "a|*", "(|)"} {
		t.Run(pattern, func(t *testing.T) {
			postfix, err := ToPostfix(pattern)
			require.NoError(t, err)
			_, err = BuildNFA(postfix)
			assert.True(t, IsMalformedPattern(err))
		})
	}
}
