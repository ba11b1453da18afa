package regexdfa

// Automata builds small deterministic automata.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language. It has no states.
func (*Automata) MakeEmpty() *Automaton {
	return NewAutomaton()
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton()
	s := a.CreateState()
	a.SetAccept(s, true)
	return a
}

// MakeChar
// Returns a new (deterministic) automaton that accepts a single byte.
func (*Automata) MakeChar(c byte) *Automaton {
	a := NewAutomaton()
	s1 := a.CreateState()
	s2 := a.CreateState()
	a.SetAccept(s2, true)
	// both endpoints exist and c is a byte
	_ = a.AddTransition(s1, s2, int(c))
	return a
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly the bytes of s.
func (*Automata) MakeString(s string) *Automaton {
	a := NewAutomatonV1(len(s)+1, len(s))
	last := a.CreateState()
	for i := 0; i < len(s); i++ {
		state := a.CreateState()
		_ = a.AddTransition(last, state, int(s[i]))
		last = state
	}
	a.SetAccept(last, true)
	return a
}
