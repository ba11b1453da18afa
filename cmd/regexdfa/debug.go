package main

import (
	"github.com/geange/regexdfa"
	"github.com/k0kubun/pp/v3"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

type automatonReport struct {
	States        int
	Transitions   int
	Accepting     []int
	Deterministic bool
}

func newAutomatonReport(a *regexdfa.Automaton) automatonReport {
	return automatonReport{
		States:        a.GetNumStates(),
		Transitions:   a.GetNumTransitions(),
		Accepting:     a.GetAcceptStates(),
		Deterministic: a.IsDeterministic(),
	}
}

type stagesReport struct {
	Pattern string
	Postfix string
	NFA     automatonReport
	DFA     automatonReport
	Minimal automatonReport
}

func newDebugCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "debug [pattern]",
		Short: "Show every compilation stage of a pattern",
		Long: `Print the postfix form of the pattern and the size of the NFA, the DFA and the minimal
DFA built from it. Without a pattern argument the first word of stdin is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := readPattern(cmd, args)
			if err != nil {
				return err
			}
			stages, err := regexdfa.CompileStages(pattern, g.compileOptions()...)
			if err != nil {
				return errors.Trace(err)
			}

			printer := pp.New()
			printer.SetColoringEnabled(false)
			printer.SetOutput(cmd.OutOrStdout())
			_, err = printer.Println(stagesReport{
				Pattern: pattern,
				Postfix: regexdfa.FormatTokens(stages.Postfix),
				NFA:     newAutomatonReport(stages.NFA),
				DFA:     newAutomatonReport(stages.DFA),
				Minimal: newAutomatonReport(stages.Minimal),
			})
			return errors.Trace(err)
		},
	}
}
