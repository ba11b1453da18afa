package regexdfa

import (
	"iter"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pingcap/errors"
)

const (
	// Epsilon labels a transition that consumes no input. Only NFAs carry it.
	Epsilon = -1

	// AlphabetSize is the number of symbol slots; every symbol is a single byte.
	AlphabetSize = 256
)

// Automaton Represents an automaton and all its states and transitions. States are dense integers
// created with CreateState. Mark a state as an accept state using SetAccept and pick the initial state
// with SetStart. Transitions are kept in insertion order and are never removed; the compiler stages
// treat an automaton they received as read-only and build a fresh one for their output.
type Automaton struct {
	// Number of states created so far; state ids are 0..numStates-1.
	numStates int

	// Initial state, or -1 while the automaton has no states.
	start int

	isAccept *bitset.BitSet

	// Holds source, dest, label for each transition.
	transitions []int
}

// Transition is one (source, dest, label) triple of an automaton.
type Transition struct {
	Source int
	Dest   int
	Label  int
}

func NewAutomaton() *Automaton {
	return NewAutomatonV1(2, 2)
}

// NewAutomatonV1 creates an empty automaton sized for the expected number of states and transitions.
func NewAutomatonV1(numStates, numTransitions int) *Automaton {
	return &Automaton{
		start:       -1,
		isAccept:    bitset.New(uint(numStates)),
		transitions: make([]int, 0, numTransitions*3),
	}
}

// CreateState Create a new state. The first state created becomes the initial state until SetStart
// says otherwise.
func (a *Automaton) CreateState() int {
	state := a.numStates
	a.numStates++
	if a.start == -1 {
		a.start = state
	}
	return state
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// SetStart marks state as the initial state.
func (a *Automaton) SetStart(state int) error {
	if !a.valid(state) {
		return errors.Errorf("start state %d is outside [0, %d)", state, a.numStates)
	}
	a.start = state
	return nil
}

// GetStart returns the initial state, or -1 if the automaton has no states.
func (a *Automaton) GetStart() int {
	return a.start
}

// GetAcceptStates returns the accept states in id order.
func (a *Automaton) GetAcceptStates() []int {
	states := make([]int, 0, a.isAccept.Count())
	for s, ok := a.isAccept.NextSet(0); ok && int(s) < a.numStates; s, ok = a.isAccept.NextSet(s + 1) {
		states = append(states, int(s))
	}
	return states
}

// AddTransition Add a new transition with the specified source, dest and label. The label is a
// byte value or Epsilon.
func (a *Automaton) AddTransition(source, dest, label int) error {
	if !a.valid(source) || !a.valid(dest) {
		return errors.Errorf("transition %d -> %d references a state outside [0, %d)", source, dest, a.numStates)
	}
	if label != Epsilon && (label < 0 || label >= AlphabetSize) {
		return errors.Errorf("label %d is not a byte", label)
	}
	a.transitions = append(a.transitions, source, dest, label)
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (a *Automaton) AddEpsilon(source, dest int) error {
	return a.AddTransition(source, dest, Epsilon)
}

func (a *Automaton) valid(state int) bool {
	return state >= 0 && state < a.numStates
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return a.numStates
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions) / 3
}

// Fill the provided Transition with the index'th transition in insertion order.
func (a *Automaton) getTransition(index int, t *Transition) {
	i := 3 * index
	t.Source = a.transitions[i]
	t.Dest = a.transitions[i+1]
	t.Label = a.transitions[i+2]
}

// Transitions iterates all transitions in insertion order.
func (a *Automaton) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		var t Transition
		for i := 0; i < a.GetNumTransitions(); i++ {
			a.getTransition(i, &t)
			if !yield(t) {
				return
			}
		}
	}
}

// Sugar to get all transitions grouped by source state, each group sorted by label then dest.
func (a *Automaton) getSortedTransitions() [][]Transition {
	transitions := make([][]Transition, a.numStates)
	for t := range a.Transitions() {
		transitions[t.Source] = append(transitions[t.Source], t)
	}
	for _, ts := range transitions {
		slices.SortFunc(ts, func(x, y Transition) int {
			if x.Label != y.Label {
				return x.Label - y.Label
			}
			return x.Dest - y.Dest
		})
	}
	return transitions
}

// Alphabet returns the distinct non-epsilon labels in ascending order.
func (a *Automaton) Alphabet() []int {
	var seen [AlphabetSize]bool
	labels := make([]int, 0)
	for t := range a.Transitions() {
		if t.Label != Epsilon && !seen[t.Label] {
			seen[t.Label] = true
			labels = append(labels, t.Label)
		}
	}
	slices.Sort(labels)
	return labels
}

// IsDeterministic Returns true if this automaton has no epsilon transitions and no state has two
// transitions leaving with the same label.
func (a *Automaton) IsDeterministic() bool {
	seen := bitset.New(uint(a.numStates * AlphabetSize))
	for t := range a.Transitions() {
		if t.Label == Epsilon {
			return false
		}
		slot := uint(t.Source*AlphabetSize + t.Label)
		if seen.Test(slot) {
			return false
		}
		seen.Set(slot)
	}
	return true
}

// Step Performs lookup in transitions, assuming determinism.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state, label int) int {
	for t := range a.Transitions() {
		if t.Source == state && t.Label == label {
			return t.Dest
		}
	}
	return -1
}

// Copy returns a deep copy of a.
func (a *Automaton) Copy() *Automaton {
	return &Automaton{
		numStates:   a.numStates,
		start:       a.start,
		isAccept:    a.isAccept.Clone(),
		transitions: slices.Clone(a.transitions),
	}
}

func (a *Automaton) String() string {
	b := new(strings.Builder)
	b.WriteString("initial state: ")
	b.WriteString(stateName(a.start))
	b.WriteString("\n")
	for s := 0; s < a.numStates; s++ {
		b.WriteString("state ")
		b.WriteString(stateName(s))
		if a.IsAccept(s) {
			b.WriteString(" [accept]")
		} else {
			b.WriteString(" [reject]")
		}
		b.WriteString(":\n")
		for t := range a.Transitions() {
			if t.Source != s {
				continue
			}
			b.WriteString("  ")
			b.WriteString(labelName(t.Label))
			b.WriteString(" -> ")
			b.WriteString(stateName(t.Dest))
			b.WriteString("\n")
		}
	}
	return b.String()
}
