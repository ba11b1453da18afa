package regexdfa

import "github.com/pingcap/errors"

// RunAutomaton is a finalized deterministic automaton: a dense state x symbol table built once and
// never modified afterwards, so one instance can be shared by concurrent readers.
type RunAutomaton struct {
	alphabetSize int
	size         int
	initial      int
	accept       []bool

	// transitions[state*alphabetSize+symbol] is the next state, or -1.
	transitions []int
}

// NewRunAutomaton builds the lookup table of a deterministic automaton over alphabetSize symbols.
func NewRunAutomaton(a *Automaton, alphabetSize int) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, errors.New("input automaton must be deterministic")
	}
	size := a.GetNumStates()
	r := &RunAutomaton{
		alphabetSize: alphabetSize,
		size:         size,
		initial:      a.GetStart(),
		accept:       make([]bool, size),
		transitions:  make([]int, size*alphabetSize),
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}
	for _, s := range a.GetAcceptStates() {
		r.accept[s] = true
	}
	for t := range a.Transitions() {
		if t.Label >= alphabetSize {
			return nil, errors.Errorf("label %d exceeds alphabet size %d", t.Label, alphabetSize)
		}
		r.transitions[t.Source*alphabetSize+t.Label] = t.Dest
	}
	return r, nil
}

// Step Returns the state reached from state on symbol, or -1 if there is no such transition.
func (r *RunAutomaton) Step(state, symbol int) int {
	if state < 0 || state >= r.size || symbol < 0 || symbol >= r.alphabetSize {
		return -1
	}
	return r.transitions[state*r.alphabetSize+symbol]
}

// IsAccept Returns acceptance status for given state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return state >= 0 && state < r.size && r.accept[state]
}

// GetSize Returns number of states in automaton.
func (r *RunAutomaton) GetSize() int {
	return r.size
}

// GetInitialState Returns the initial state, -1 for an automaton without states.
func (r *RunAutomaton) GetInitialState() int {
	return r.initial
}

// ByteRunAutomaton Automaton representation for matching byte strings.
type ByteRunAutomaton struct {
	*RunAutomaton
}

// Finalize builds the byte lookup table of a deterministic automaton. The result does not share
// memory with a, so later changes to a are not visible through it.
func (a *Automaton) Finalize() (*ByteRunAutomaton, error) {
	r, err := NewRunAutomaton(a, AlphabetSize)
	if err != nil {
		return nil, err
	}
	return &ByteRunAutomaton{r}, nil
}

// Run Returns true if the given byte array is accepted by this automaton
func (r *ByteRunAutomaton) Run(s []byte) bool {
	return run(r, s)
}

// MatchString Returns true if the bytes of s are accepted by this automaton.
func (r *ByteRunAutomaton) MatchString(s string) bool {
	return run(r, s)
}

func run[S ~string | ~[]byte](r *ByteRunAutomaton, s S) bool {
	p := r.initial
	if p == -1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		p = r.transitions[p*AlphabetSize+int(s[i])]
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
