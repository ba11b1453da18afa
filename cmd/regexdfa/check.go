package main

import (
	"fmt"

	"github.com/geange/regexdfa/internal/casefile"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check <cases.json>",
		Short: "Run a JSON case file",
		Long: `Compile every case of a JSON case file and check its should_accept and should_reject
inputs. Each failed expectation is printed on its own line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := casefile.Load(args[0])
			if err != nil {
				return err
			}
			failures := casefile.RunAll(cases, g.compileOptions()...)
			for _, f := range failures {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cases, %d failures\n", len(cases), len(failures))
			log.Info("checked case file",
				zap.String("path", args[0]),
				zap.Int("cases", len(cases)),
				zap.Int("failures", len(failures)))
			if len(failures) > 0 {
				return errors.Errorf("%d expectations failed", len(failures))
			}
			return nil
		},
	}
}
