package main

import (
	"bufio"
	"fmt"

	"github.com/geange/regexdfa"
	"github.com/geange/regexdfa/internal/config"
	"github.com/geange/regexdfa/internal/logutil"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	// FlagConfig is the name of config flag.
	FlagConfig = "config"
	// FlagLogLevel is the name of log-level flag.
	FlagLogLevel = "log-level"
	// FlagLogFormat is the name of log-format flag.
	FlagLogFormat = "log-format"
	// FlagWorkLimit is the name of work-limit flag.
	FlagWorkLimit = "work-limit"
)

// globals is the state every command shares once flags are parsed.
type globals struct {
	conf   *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	g := &globals{}
	rootCmd := &cobra.Command{
		Use:   "regexdfa [pattern]",
		Short: "regexdfa compiles a regular expression into a minimal DFA.",
		Long: `regexdfa compiles a regular expression into a minimal DFA and prints it as JSON.

Patterns use literal bytes, union '|', Kleene star '*', grouping '()' and implicit
concatenation. Without a pattern argument the first word of stdin is compiled.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := readPattern(cmd, args)
			if err != nil {
				return err
			}
			r, err := regexdfa.Compile(pattern, g.compileOptions()...)
			if err != nil {
				return errors.Trace(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.JSON())
			return nil
		},
	}
	DefineCommonFlags(rootCmd)
	rootCmd.AddCommand(
		newMatchCommand(g),
		newCheckCommand(g),
		newDebugCommand(g),
	)
	return rootCmd
}

// DefineCommonFlags defines the flags shared by every command.
func DefineCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "C", "", "Path of a TOML config file")
	cmd.PersistentFlags().StringP(FlagLogLevel, "L", logutil.DefaultLogLevel, "Set the log level")
	cmd.PersistentFlags().String(FlagLogFormat, logutil.DefaultLogFormat, "Set the log format")
	cmd.PersistentFlags().Int(FlagWorkLimit, 0,
		"Maximum number of DFA states subset construction may create, 0 for no limit")
}

// init loads the config file, applies the flags given on the command line over it and sets up
// the logger.
func (g *globals) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	g.conf = config.NewConfig()
	path, err := flags.GetString(FlagConfig)
	if err != nil {
		return errors.Trace(err)
	}
	if len(path) > 0 {
		if err := g.conf.Load(path); err != nil {
			return err
		}
	}

	if flags.Changed(FlagLogLevel) {
		if g.conf.Log.Level, err = flags.GetString(FlagLogLevel); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(FlagLogFormat) {
		if g.conf.Log.Format, err = flags.GetString(FlagLogFormat); err != nil {
			return errors.Trace(err)
		}
	}
	if flags.Changed(FlagWorkLimit) {
		if g.conf.Compile.DeterminizeWorkLimit, err = flags.GetInt(FlagWorkLimit); err != nil {
			return errors.Trace(err)
		}
	}
	if err := g.conf.Valid(); err != nil {
		return err
	}

	if g.logger, err = logutil.InitLogger(g.conf.Log.ToLogConfig()); err != nil {
		return err
	}
	log.Debug("configured",
		zap.String("config", path),
		zap.Int("determinize-work-limit", g.conf.Compile.DeterminizeWorkLimit))
	return nil
}

func (g *globals) compileOptions() []regexdfa.Option {
	return []regexdfa.Option{
		regexdfa.WithLogger(g.logger),
		regexdfa.WithDeterminizeWorkLimit(g.conf.Compile.DeterminizeWorkLimit),
	}
}

// readPattern returns the pattern argument, or the first whitespace-delimited word of stdin. An
// empty stdin yields the empty pattern.
func readPattern(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", errors.Trace(scanner.Err())
}
