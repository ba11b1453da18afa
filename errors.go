package regexdfa

import "github.com/pingcap/errors"

var (
	// ErrMalformedPattern is the cause of every parse and construction failure: unbalanced
	// grouping and operators that lack operands.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrTooComplex is returned when subset construction exceeds the configured work limit.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)

// IsMalformedPattern reports whether err was caused by a malformed pattern.
func IsMalformedPattern(err error) bool {
	return err != nil && errors.Cause(err) == ErrMalformedPattern
}

// IsTooComplex reports whether err was caused by exceeding the determinize work limit.
func IsTooComplex(err error) bool {
	return err != nil && errors.Cause(err) == ErrTooComplex
}

func malformed(format string, args ...any) error {
	return errors.Annotatef(ErrMalformedPattern, format, args...)
}
