// Package casefile runs acceptance cases stored as JSON against compiled patterns.
package casefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/geange/regexdfa"
	"github.com/pingcap/errors"
)

// Case is one pattern with the inputs it must accept and reject.
type Case struct {
	Name         string   `json:"name"`
	Regex        string   `json:"regex"`
	ShouldAccept []string `json:"should_accept"`
	ShouldReject []string `json:"should_reject"`
}

// Failure describes one input that a compiled case got wrong, or a case that did not compile.
type Failure struct {
	Case  string
	Input string
	Want  bool
	Err   error
}

func (f Failure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Case, f.Err)
	}
	verb := "reject"
	if f.Want {
		verb = "accept"
	}
	return fmt.Sprintf("%s: expected to %s %q", f.Case, verb, f.Input)
}

// Decode reads a JSON array of cases.
func Decode(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := json.NewDecoder(r).Decode(&cases); err != nil {
		return nil, errors.Annotate(err, "decode cases")
	}
	return cases, nil
}

// Load reads the cases stored in the file at path.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	return Decode(f)
}

// Run compiles the case and checks every input, returning one failure per wrong answer.
func (c *Case) Run(opts ...regexdfa.Option) []Failure {
	r, err := regexdfa.Compile(c.Regex, opts...)
	if err != nil {
		return []Failure{{Case: c.Name, Err: err}}
	}
	var failures []Failure
	for _, s := range c.ShouldAccept {
		if !r.MatchString(s) {
			failures = append(failures, Failure{Case: c.Name, Input: s, Want: true})
		}
	}
	for _, s := range c.ShouldReject {
		if r.MatchString(s) {
			failures = append(failures, Failure{Case: c.Name, Input: s, Want: false})
		}
	}
	return failures
}

// RunAll runs every case in order.
func RunAll(cases []Case, opts ...regexdfa.Option) []Failure {
	var failures []Failure
	for i := range cases {
		failures = append(failures, cases[i].Run(opts...)...)
	}
	return failures
}
