package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vipcxj/intervals/internal/calc"
	"github.com/vipcxj/intervals/interval"
)

const envPrefix = "INTERVALS"

const shortDesc = "Evaluate interval algebra on integer and float ranges"

const longDesc = `intervals parses ranges written as N, >N, >=N, <N, <=N or in bracket form
such as [1,5) and (,3], then computes containment, complement, intersection,
union and difference with exact open/closed boundaries.

Results print one fragment per value, joined by --format. With --export the
result is emitted as a shell assignment that calling scripts can eval.

Every flag can also be set through an INTERVALS_* environment variable
(INTERVALS_DOMAIN, INTERVALS_FORMAT, ...) or a config file given with --config.`

// app carries the per-invocation state shared by the subcommands.
type app struct {
	v    *viper.Viper
	log  *logrus.Logger
	opts calc.Options
}

// Execute runs the command line in os.Args and returns the process exit code.
// Every call builds a fresh command tree and configuration.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	a := &app{v: viper.New(), log: logrus.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	return a
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "intervals",
		Short:             shortDesc,
		Long:              longDesc,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml) supplying flag defaults")
	addEnumFlag(rootCmd, flags, "domain", "d", calc.DomainKindInt, calc.DomainKindString, calc.DomainKindStrings(),
		"Value type of the intervals")
	addEnumFlag(rootCmd, flags, "format", "f", calc.OutputFormatComma, calc.OutputFormatString, calc.OutputFormatStrings(),
		"How result fragments are joined")
	addEnumFlag(rootCmd, flags, "input-format", "i", calc.InputFormatArgs, calc.InputFormatString, calc.InputFormatStrings(),
		"How arguments are split into intervals, json reads the output of --format json")
	addEnumFlag(rootCmd, flags, "shell", "", calc.ShellTypeAuto, calc.ShellTypeString, calc.ShellTypeStrings(),
		"Shell syntax used by --export, auto detects the calling shell")
	flags.StringP("export", "e", "", "Emit the result as an assignment to this shell variable")
	flags.Bool("persist", false, "With --export, export the variable (sh) or store it for the user (cmd, powershell)")
	flags.Bool("discrete", false, "Rewrite integer results as closed ranges of the integers they hold")
	flags.Bool("debug", false, "Log debug information to stderr")

	rootCmd.AddCommand(
		newContainsCmd(a),
		newComplementCmd(a),
		newIntersectCmd(a),
		newUnionCmd(a),
		newDifferenceCmd(a),
		newDescribeCmd(a),
		newUniverseCmd(a),
		newEmptyCmd(a),
		newNaturalCmd(a),
	)
	annotateEnv(flags)
	for _, c := range rootCmd.Commands() {
		annotateEnv(c.Flags())
	}
	return rootCmd
}

// setup binds the parsed flags to viper, configures logging and resolves
// the options for the command about to run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	a.log.SetOutput(os.Stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(logrus.WarnLevel)
	if a.v.GetBool("debug") {
		a.log.SetLevel(logrus.DebugLevel)
	}

	opts, err := a.resolveOptions()
	if err != nil {
		return err
	}
	a.opts = opts
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"domain":  opts.Domain.String(),
		"format":  opts.Format.String(),
	}).Debug("resolved options")
	if opts.Export == "" && opts.Shell != calc.ShellTypeAuto {
		a.log.Warnf("--shell %s has no effect without --export", opts.Shell)
	}
	return nil
}

func (a *app) resolveOptions() (calc.Options, error) {
	opts := calc.Options{
		Export:   a.v.GetString("export"),
		Persist:  a.v.GetBool("persist"),
		Discrete: a.v.GetBool("discrete"),
		Check:    a.v.GetBool("check"),
		Logger:   a.log,
	}
	var err error
	if opts.Domain, err = calc.DomainKindString(a.v.GetString("domain")); err != nil {
		return opts, errors.Wrap(err, "domain")
	}
	if opts.Format, err = calc.OutputFormatString(a.v.GetString("format")); err != nil {
		return opts, errors.Wrap(err, "format")
	}
	if opts.Input, err = calc.InputFormatString(a.v.GetString("input-format")); err != nil {
		return opts, errors.Wrap(err, "input format")
	}
	if opts.Shell, err = calc.ShellTypeString(a.v.GetString("shell")); err != nil {
		return opts, errors.Wrap(err, "shell")
	}
	opts.Denominator = interval.DenominatorHighest
	if d := a.v.GetString("denominator"); d != "" {
		if opts.Denominator, err = interval.DenominatorString(d); err != nil {
			return opts, errors.Wrap(err, "denominator")
		}
	}
	return opts, nil
}

// run evaluates op over args and writes the result.
func (a *app) run(op calc.Operation) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		values, err := calc.Evaluate(op, a.opts, args)
		if err != nil {
			return err
		}
		return calc.Emit(cmd.OutOrStdout(), a.opts, values)
	}
}
