package regexdfa

import "sort"

// Run Returns true if the bytes of s are accepted by the deterministic automaton a. It needs no
// lookup table: each step binary searches the sorted transitions of the current state.
func Run(a *Automaton, s string) bool {
	state := a.GetStart()
	if state == -1 {
		return false
	}
	transitions := a.getSortedTransitions()
	for i := 0; i < len(s); i++ {
		label := int(s[i])
		ts := transitions[state]
		j := sort.Search(len(ts), func(k int) bool { return ts[k].Label >= label })
		if j == len(ts) || ts[j].Label != label {
			return false
		}
		state = ts[j].Dest
	}
	return a.IsAccept(state)
}
