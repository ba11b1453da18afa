package regexdfa

import (
	"encoding/json"
	"strconv"
)

// representation is the JSON shape read by external tooling. Field order is the key order.
type representation struct {
	States             []string    `json:"states"`
	Letters            []string    `json:"letters"`
	TransitionFunction [][3]string `json:"transition_function"`
	StartStates        []string    `json:"start_states"`
	FinalStates        []string    `json:"final_states"`
}

func stateName(state int) string {
	return "Q" + strconv.Itoa(state)
}

// labelName renders a label as the code point of the same value (Latin-1), or "ε" for Epsilon,
// so every byte keeps a letter of its own in JSON.
func labelName(label int) string {
	if label == Epsilon {
		return "ε"
	}
	return string(rune(label))
}

func (a *Automaton) representation() *representation {
	rep := &representation{
		States:             make([]string, 0, a.GetNumStates()),
		Letters:            make([]string, 0),
		TransitionFunction: make([][3]string, 0, a.GetNumTransitions()),
		StartStates:        make([]string, 0, 1),
		FinalStates:        make([]string, 0),
	}
	for s := 0; s < a.GetNumStates(); s++ {
		rep.States = append(rep.States, stateName(s))
	}

	hasEpsilon := false
	for t := range a.Transitions() {
		if t.Label == Epsilon {
			hasEpsilon = true
		}
		rep.TransitionFunction = append(rep.TransitionFunction,
			[3]string{stateName(t.Source), labelName(t.Label), stateName(t.Dest)})
	}
	if hasEpsilon {
		rep.Letters = append(rep.Letters, labelName(Epsilon))
	}
	for _, label := range a.Alphabet() {
		rep.Letters = append(rep.Letters, labelName(label))
	}

	// An automaton without states has no initial state to name.
	if a.GetStart() != -1 {
		rep.StartStates = append(rep.StartStates, stateName(a.GetStart()))
	}
	for _, s := range a.GetAcceptStates() {
		rep.FinalStates = append(rep.FinalStates, stateName(s))
	}
	return rep
}

// MarshalJSON encodes the automaton in the external JSON shape.
func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.representation())
}

// Export renders the automaton in the external JSON shape, indented by two spaces.
func Export(a *Automaton) string {
	// Only strings are encoded, which cannot fail.
	b, _ := json.MarshalIndent(a.representation(), "", "  ")
	return string(b)
}
