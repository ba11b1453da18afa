package regexdfa

import (
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/pingcap/errors"
)

// nfaIndex holds the per-state adjacency of an NFA, split into epsilon and symbol edges.
type nfaIndex struct {
	numStates int
	eps       [][]int
	sym       [][]Transition
	accept    *bitset.BitSet
}

func newNFAIndex(a *Automaton) *nfaIndex {
	n := a.GetNumStates()
	idx := &nfaIndex{
		numStates: n,
		eps:       make([][]int, n),
		sym:       make([][]Transition, n),
		accept:    bitset.New(uint(n)),
	}
	for t := range a.Transitions() {
		if t.Label == Epsilon {
			idx.eps[t.Source] = append(idx.eps[t.Source], t.Dest)
		} else {
			idx.sym[t.Source] = append(idx.sym[t.Source], t)
		}
	}
	for _, s := range a.GetAcceptStates() {
		idx.accept.Set(uint(s))
	}
	return idx
}

// closure expands set in place with every state reachable over epsilon edges, breadth first.
func (idx *nfaIndex) closure(set *StateSet) *StateSet {
	workList := set.GetArray()
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, d := range idx.eps[s] {
			if set.Add(d) {
				workList = append(workList, d)
			}
		}
	}
	return set
}

// moves groups the symbol successors of every member of set by label.
func (idx *nfaIndex) moves(set *StateSet) map[int]*StateSet {
	res := make(map[int]*StateSet)
	for _, s := range set.GetArray() {
		for _, t := range idx.sym[s] {
			next, ok := res[t.Label]
			if !ok {
				next = NewStateSet(idx.numStates)
				res[t.Label] = next
			}
			next.Add(t.Dest)
		}
	}
	return res
}

// Determinize Determinizes the given automaton with the subset construction.
// Worst case complexity: exponential in number of states. WithDeterminizeWorkLimit bounds the number
// of DFA states created; exceeding it fails with ErrTooComplex.
//
// Every DFA state is the epsilon-closure of a set of NFA states, and it accepts when that set holds
// an NFA accept state. The initial DFA state is the closure of the NFA's initial state and gets id 0;
// the others are numbered in discovery order.
func Determinize(a *Automaton, opts ...Option) (*Automaton, error) {
	o := newOptions(opts...)
	if a.GetNumStates() == 0 {
		return defaultAutomata.MakeEmpty(), nil
	}

	idx := newNFAIndex(a)
	b := NewAutomaton()
	newState := NewHashMap[int](WithCapacity(a.GetNumStates()))
	workList := make([]*StateSet, 0)

	addState := func(set *StateSet) (int, error) {
		if id, ok := newState.Get(set); ok {
			return id, nil
		}
		if o.determinizeWorkLimit > 0 && b.GetNumStates() >= o.determinizeWorkLimit {
			return -1, errors.Annotatef(ErrTooComplex, "subset construction exceeded %d states", o.determinizeWorkLimit)
		}
		id := b.CreateState()
		b.SetAccept(id, set.Intersects(idx.accept))
		newState.Set(set, id)
		workList = append(workList, set)
		return id, nil
	}

	initialSet := NewStateSet(idx.numStates)
	initialSet.Add(a.GetStart())
	start, err := addState(idx.closure(initialSet))
	if err != nil {
		return nil, err
	}
	if err := b.SetStart(start); err != nil {
		return nil, err
	}

	for len(workList) > 0 {
		set := workList[0]
		workList = workList[1:]
		source, _ := newState.Get(set)

		moves := idx.moves(set)
		for _, label := range slices.Sorted(maps.Keys(moves)) {
			dest, err := addState(idx.closure(moves[label]))
			if err != nil {
				return nil, err
			}
			if err := b.AddTransition(source, dest, label); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a.GetNumStates() == 0 {
		// Common case: no states
		return true
	}
	if a.IsAccept(a.GetStart()) {
		// Accepts the empty string
		return false
	}
	reachable := getLiveStatesFromInitial(a)
	for _, s := range a.GetAcceptStates() {
		if reachable.Test(uint(s)) {
			return false
		}
	}
	return true
}

// removeDeadStates returns a copy of a without the states that are unreachable from the initial
// state or cannot reach an accept state. The initial state is always kept. Surviving states keep
// their relative order.
func removeDeadStates(a *Automaton) (*Automaton, error) {
	numStates := a.GetNumStates()
	if numStates == 0 {
		return NewAutomaton(), nil
	}
	liveSet := getLiveStates(a)
	liveSet.Set(uint(a.GetStart()))

	mp := make([]int, numStates)
	result := NewAutomatonV1(int(liveSet.Count()), a.GetNumTransitions())
	for i := 0; i < numStates; i++ {
		mp[i] = -1
		if liveSet.Test(uint(i)) {
			mp[i] = result.CreateState()
			result.SetAccept(mp[i], a.IsAccept(i))
		}
	}
	if err := result.SetStart(mp[a.GetStart()]); err != nil {
		return nil, err
	}

	// filter out transitions touching dead states
	for t := range a.Transitions() {
		if mp[t.Source] == -1 || mp[t.Dest] == -1 {
			continue
		}
		if err := result.AddTransition(mp[t.Source], mp[t.Dest], t.Label); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func getLiveStates(a *Automaton) *bitset.BitSet {
	live := getLiveStatesFromInitial(a)
	return live.Intersection(getLiveStatesToAccept(a))
}

func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}

	adj := make([][]int, numStates)
	for t := range a.Transitions() {
		adj[t.Source] = append(adj[t.Source], t.Dest)
	}
	return reach(live, adj, a.GetStart())
}

func getLiveStatesToAccept(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()
	live := bitset.New(uint(numStates))

	// reverse the edges, then search from every accept state
	reversed := make([][]int, numStates)
	for t := range a.Transitions() {
		reversed[t.Dest] = append(reversed[t.Dest], t.Source)
	}
	return reach(live, reversed, a.GetAcceptStates()...)
}

func reach(seen *bitset.BitSet, adj [][]int, from ...int) *bitset.BitSet {
	workList := make([]int, 0, len(from))
	for _, s := range from {
		if !seen.Test(uint(s)) {
			seen.Set(uint(s))
			workList = append(workList, s)
		}
	}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, d := range adj[s] {
			if !seen.Test(uint(d)) {
				seen.Set(uint(d))
				workList = append(workList, d)
			}
		}
	}
	return seen
}
