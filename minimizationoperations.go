package regexdfa

import (
	"slices"

	"github.com/pingcap/errors"
)

// signature identifies the behaviour of a state within one refinement round: its current group and
// the group reached on every symbol of the alphabet, -1 for a missing transition.
type signature struct {
	group   int
	targets []int
}

func (s *signature) Hash() uint64 {
	return mixSeq(mixSeq(0, s.group), s.targets...)
}

func (s *signature) Equals(other Hashable) bool {
	o, ok := other.(*signature)
	return ok && s.group == o.group && slices.Equal(s.targets, o.targets)
}

// Minimize
// Minimizes the given deterministic automaton by partition refinement (Moore's algorithm). Dead
// states are dropped first. States start in two groups, accepting and rejecting, and a group is
// split whenever its members disagree on the group some symbol leads to; refinement stops when a
// round creates no new group. Each final group becomes one state, numbered by its smallest member.
func Minimize(a *Automaton) (*Automaton, error) {
	if !a.IsDeterministic() {
		return nil, errors.New("input automaton must be deterministic")
	}
	if a.GetNumStates() == 0 {
		// Fastmatch for common case
		return NewAutomaton(), nil
	}

	a, err := removeDeadStates(a)
	if err != nil {
		return nil, err
	}
	numStates := a.GetNumStates()
	alphabet := a.Alphabet()

	column := make(map[int]int, len(alphabet))
	for i, label := range alphabet {
		column[label] = i
	}
	trans := make([]int, numStates*len(alphabet))
	for i := range trans {
		trans[i] = -1
	}
	for t := range a.Transitions() {
		trans[t.Source*len(alphabet)+column[t.Label]] = t.Dest
	}

	group := make([]int, numStates)
	numGroups := 1
	for s := 0; s < numStates; s++ {
		if a.IsAccept(s) {
			group[s] = 1
			numGroups = 2
		}
	}
	if numGroups == 2 && slices.Index(group, 0) == -1 {
		// every state accepts
		numGroups = 1
	}

	for {
		signatures := NewHashMap[int](WithCapacity(numStates))
		next := make([]int, numStates)
		for s := 0; s < numStates; s++ {
			sig := &signature{group: group[s], targets: make([]int, len(alphabet))}
			for i := range alphabet {
				sig.targets[i] = -1
				if d := trans[s*len(alphabet)+i]; d != -1 {
					sig.targets[i] = group[d]
				}
			}
			next[s], _ = signatures.GetOrSet(sig, signatures.Size)
		}
		group = next
		if signatures.Size() == numGroups {
			break
		}
		numGroups = signatures.Size()
	}

	result := NewAutomatonV1(numGroups, a.GetNumTransitions())
	for i := 0; i < numGroups; i++ {
		result.CreateState()
	}
	if err := result.SetStart(group[a.GetStart()]); err != nil {
		return nil, err
	}
	for _, s := range a.GetAcceptStates() {
		result.SetAccept(group[s], true)
	}

	seen := make(map[Transition]struct{}, a.GetNumTransitions())
	merged := make([]Transition, 0, a.GetNumTransitions())
	for t := range a.Transitions() {
		m := Transition{Source: group[t.Source], Dest: group[t.Dest], Label: t.Label}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		merged = append(merged, m)
	}
	slices.SortFunc(merged, func(x, y Transition) int {
		if x.Source != y.Source {
			return x.Source - y.Source
		}
		if x.Label != y.Label {
			return x.Label - y.Label
		}
		return x.Dest - y.Dest
	})
	for _, t := range merged {
		if err := result.AddTransition(t.Source, t.Dest, t.Label); err != nil {
			return nil, err
		}
	}
	return result, nil
}
