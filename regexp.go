package regexdfa

import (
	"go.uber.org/zap"
)

type options struct {
	logger               *zap.Logger
	determinizeWorkLimit int
}

type Option func(*options)

// WithLogger makes Compile log one debug record per stage.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDeterminizeWorkLimit bounds the number of states subset construction may create. Zero, the
// default, means no bound.
func WithDeterminizeWorkLimit(limit int) Option {
	return func(o *options) {
		o.determinizeWorkLimit = max(limit, 0)
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Stages holds the output of every compilation stage.
type Stages struct {
	Postfix []Token
	NFA     *Automaton
	DFA     *Automaton
	Minimal *Automaton
}

// CompileStages runs the pipeline up to minimization and keeps every intermediate automaton. A
// pattern with an empty postfix stream, such as "" or "()", compiles to the empty-string language.
func CompileStages(pattern string, opts ...Option) (*Stages, error) {
	o := newOptions(opts...)
	logger := o.logger.With(zap.String("pattern", pattern))

	postfix, err := ToPostfix(pattern)
	if err != nil {
		return nil, err
	}
	logger.Debug("translated to postfix", zap.String("postfix", FormatTokens(postfix)))

	nfa, err := BuildNFA(postfix)
	if err != nil {
		return nil, err
	}
	logStage(logger, "built nfa", nfa)

	if len(postfix) == 0 {
		a := defaultAutomata.MakeEmptyString()
		logStage(logger, "empty pattern", a)
		return &Stages{Postfix: postfix, NFA: nfa, DFA: a, Minimal: a.Copy()}, nil
	}

	dfa, err := Determinize(nfa, opts...)
	if err != nil {
		return nil, err
	}
	logStage(logger, "determinized", dfa)

	minimal, err := Minimize(dfa)
	if err != nil {
		return nil, err
	}
	logStage(logger, "minimized", minimal)

	return &Stages{Postfix: postfix, NFA: nfa, DFA: dfa, Minimal: minimal}, nil
}

func logStage(logger *zap.Logger, msg string, a *Automaton) {
	logger.Debug(msg,
		zap.Int("states", a.GetNumStates()),
		zap.Int("transitions", a.GetNumTransitions()))
}

// Regexp is a compiled pattern: its minimal DFA and the finalized lookup table used for matching.
// It is immutable and safe for concurrent use.
type Regexp struct {
	pattern string
	minimal *Automaton
	run     *ByteRunAutomaton
}

// Compile compiles pattern into a minimal DFA. Errors caused by the pattern satisfy
// IsMalformedPattern.
func Compile(pattern string, opts ...Option) (*Regexp, error) {
	stages, err := CompileStages(pattern, opts...)
	if err != nil {
		return nil, err
	}
	run, err := stages.Minimal.Finalize()
	if err != nil {
		return nil, err
	}
	return &Regexp{pattern: pattern, minimal: stages.Minimal, run: run}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts ...Option) *Regexp {
	r, err := Compile(pattern, opts...)
	if err != nil {
		panic(`regexdfa: Compile(` + pattern + `): ` + err.Error())
	}
	return r
}

// Match reports whether b is accepted.
func (r *Regexp) Match(b []byte) bool {
	return r.run.Run(b)
}

// MatchString reports whether s is accepted.
func (r *Regexp) MatchString(s string) bool {
	return r.run.MatchString(s)
}

// Automaton returns a copy of the minimal DFA.
func (r *Regexp) Automaton() *Automaton {
	return r.minimal.Copy()
}

// RunAutomaton returns the finalized lookup table.
func (r *Regexp) RunAutomaton() *ByteRunAutomaton {
	return r.run
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.pattern
}

// MarshalJSON encodes the minimal DFA in the external JSON shape.
func (r *Regexp) MarshalJSON() ([]byte, error) {
	return r.minimal.MarshalJSON()
}

// JSON renders the minimal DFA in the external JSON shape, indented.
func (r *Regexp) JSON() string {
	return Export(r.minimal)
}
