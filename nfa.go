package regexdfa

// fragment is a partially built NFA: its entry and exit states. Exit has no outgoing transitions
// until the fragment is combined into a larger one.
type fragment struct {
	entry, exit int
}

// nfaBuilder grows an NFA with Thompson's construction, one fragment per operand.
type nfaBuilder struct {
	nfa   *Automaton
	stack []fragment
}

func (b *nfaBuilder) push(f fragment) {
	b.stack = append(b.stack, f)
}

func (b *nfaBuilder) pop(t Token) (fragment, error) {
	if len(b.stack) == 0 {
		return fragment{}, malformed("%s at position %d is missing an operand", t.Kind, t.Pos)
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f, nil
}

func (b *nfaBuilder) pop2(t Token) (fragment, fragment, error) {
	f2, err := b.pop(t)
	if err != nil {
		return fragment{}, fragment{}, err
	}
	f1, err := b.pop(t)
	if err != nil {
		return fragment{}, fragment{}, err
	}
	return f1, f2, nil
}

func (b *nfaBuilder) literal(c byte) error {
	s := b.nfa.CreateState()
	e := b.nfa.CreateState()
	if err := b.nfa.AddTransition(s, e, int(c)); err != nil {
		return err
	}
	b.push(fragment{s, e})
	return nil
}

func (b *nfaBuilder) union(t Token) error {
	f1, f2, err := b.pop2(t)
	if err != nil {
		return err
	}
	s := b.nfa.CreateState()
	e := b.nfa.CreateState()
	for _, edge := range [][2]int{{s, f1.entry}, {s, f2.entry}, {f1.exit, e}, {f2.exit, e}} {
		if err := b.nfa.AddEpsilon(edge[0], edge[1]); err != nil {
			return err
		}
	}
	b.push(fragment{s, e})
	return nil
}

// concat links two fragments without allocating states.
func (b *nfaBuilder) concat(t Token) error {
	f1, f2, err := b.pop2(t)
	if err != nil {
		return err
	}
	if err := b.nfa.AddEpsilon(f1.exit, f2.entry); err != nil {
		return err
	}
	b.push(fragment{f1.entry, f2.exit})
	return nil
}

func (b *nfaBuilder) star(t Token) error {
	f, err := b.pop(t)
	if err != nil {
		return err
	}
	s := b.nfa.CreateState()
	e := b.nfa.CreateState()
	// enter, skip, loop back
	for _, edge := range [][2]int{{s, f.entry}, {s, e}, {f.exit, s}} {
		if err := b.nfa.AddEpsilon(edge[0], edge[1]); err != nil {
			return err
		}
	}
	b.push(fragment{s, e})
	return nil
}

// BuildNFA builds an epsilon-NFA from a postfix token stream. The remaining fragment's entry is the
// initial state and its exit the only accept state. An empty stream yields an automaton with no
// states, which accepts nothing.
func BuildNFA(postfix []Token) (*Automaton, error) {
	b := &nfaBuilder{
		nfa:   NewAutomatonV1(2*len(postfix), 2*len(postfix)),
		stack: make([]fragment, 0),
	}

	for _, t := range postfix {
		var err error
		switch t.Kind {
		case TokenLiteral:
			err = b.literal(t.Symbol)
		case TokenUnion:
			err = b.union(t)
		case TokenConcat:
			err = b.concat(t)
		case TokenStar:
			err = b.star(t)
		default:
			err = malformed("unexpected %s at position %d", t.Kind, t.Pos)
		}
		if err != nil {
			return nil, err
		}
	}

	switch len(b.stack) {
	case 0:
		return b.nfa, nil
	case 1:
	default:
		return nil, malformed("%d operands are not joined by an operator", len(b.stack))
	}

	f := b.stack[0]
	if err := b.nfa.SetStart(f.entry); err != nil {
		return nil, err
	}
	b.nfa.SetAccept(f.exit, true)
	return b.nfa, nil
}
