package main

import (
	"fmt"

	"github.com/geange/regexdfa"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

const flagStrict = "strict"

func newMatchCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern> [input...]",
		Short: "Match inputs against a pattern",
		Long:  "Compile the pattern and print accept or reject for every input.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, err := cmd.Flags().GetBool(flagStrict)
			if err != nil {
				return errors.Trace(err)
			}
			r, err := regexdfa.Compile(args[0], g.compileOptions()...)
			if err != nil {
				return errors.Trace(err)
			}

			rejected := 0
			for _, input := range args[1:] {
				verdict := "accept"
				if !r.MatchString(input) {
					verdict = "reject"
					rejected++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", verdict, input)
			}
			if strict && rejected > 0 {
				return errors.Errorf("%d of %d inputs rejected", rejected, len(args)-1)
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagStrict, false, "Exit with status 1 if any input is rejected")
	return cmd
}
