package regexdfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "b", "aa"}},
		{"a|b", []string{"a", "b"}, []string{"", "ab", "c"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"(a|b)*abb", []string{"abb", "aababb", "ababb"}, []string{"", "ab", "abab", "abbb"}},
		{"(ab|cd)*", []string{"", "ab", "cdab", "abcdab"}, []string{"a", "ac", "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			run, err := minimize(t, tt.pattern).Finalize()
			require.NoError(t, err)
			for _, s := range tt.accept {
				assert.True(t, run.Run([]byte(s)), "accept %q", s)
				assert.True(t, run.MatchString(s), "accept %q", s)
			}
			for _, s := range tt.reject {
				assert.False(t, run.Run([]byte(s)), "reject %q", s)
				assert.False(t, run.MatchString(s), "reject %q", s)
			}
		})
	}
}

func TestFinalize_Table(t *testing.T) {
	a := minimize(t, "(a|b)*abb")
	run, err := a.Finalize()
	require.NoError(t, err)

	assert.Equal(t, 4, run.GetSize())
	assert.Equal(t, 0, run.GetInitialState())
	assert.True(t, run.IsAccept(3))
	assert.False(t, run.IsAccept(0))
	assert.False(t, run.IsAccept(4))
	for tr := range a.Transitions() {
		assert.Equal(t, tr.Dest, run.Step(tr.Source, tr.Label))
	}
	assert.Equal(t, -1, run.Step(0, 'c'))
	assert.Equal(t, -1, run.Step(4, 'a'))
	assert.Equal(t, -1, run.Step(-1, 'a'))
	assert.Equal(t, -1, run.Step(0, AlphabetSize))
}

func TestFinalize_Detached(t *testing.T) {
	a := defaultAutomata.MakeChar('a')
	run, err := a.Finalize()
	require.NoError(t, err)

	require.NoError(t, a.AddTransition(1, 1, 'a'))
	assert.True(t, run.MatchString("a"))
	assert.False(t, run.MatchString("aa"))
}

func TestFinalize_NoStates(t *testing.T) {
	run, err := defaultAutomata.MakeEmpty().Finalize()
	require.NoError(t, err)
	assert.Equal(t, -1, run.GetInitialState())
	assert.False(t, run.Run(nil))
	assert.False(t, run.MatchString("a"))
}

func TestFinalize_NonDeterministic(t *testing.T) {
	_, err := buildNFA(t, "ab").Finalize()
	assert.Error(t, err)
}

func TestFinalize_HighBytes(t *testing.T) {
	a := defaultAutomata.MakeString("\xff\x00")
	run, err := a.Finalize()
	require.NoError(t, err)
	assert.True(t, run.Run([]byte{0xff, 0x00}))
	assert.False(t, run.Run([]byte{0xff}))
}

func TestByteRunAutomaton_RunAgreesWithMatchString(t *testing.T) {
	run, err := minimize(t, "(a|\xff)*ab").Finalize()
	require.NoError(t, err)
	for _, s := range []string{"", "ab", "\xffab", "a\xffab", "aa", "\xff", "abb", "b"} {
		assert.Equal(t, run.MatchString(s), run.Run([]byte(s)), "input %q", s)
	}
	assert.True(t, run.MatchString("\xffab"))
	assert.False(t, run.Run([]byte("\xff")))
}
