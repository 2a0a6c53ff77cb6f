package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vipcxj/intervals/internal/calc"
)

// enumValue is a pflag.Value restricted to the names of an enumer type.
type enumValue[E fmt.Stringer] struct {
	value   E
	parse   func(string) (E, error)
	choices []string
	name    string
}

func (e *enumValue[E]) String() string { return e.value.String() }

func (e *enumValue[E]) Set(s string) error {
	v, err := e.parse(s)
	if err != nil {
		return fmt.Errorf("must be one of %s", strings.Join(e.choices, "|"))
	}
	e.value = v
	return nil
}

func (e *enumValue[E]) Type() string { return e.name }

// addEnumFlag defines an enum flag on flags and registers shell completion
// for its names on cmd.
func addEnumFlag[E fmt.Stringer](cmd *cobra.Command, flags *pflag.FlagSet, name, shorthand string, def E,
	parse func(string) (E, error), choices []string, usage string) {
	value := &enumValue[E]{value: def, parse: parse, choices: choices, name: name}
	flags.VarP(value, name, shorthand, fmt.Sprintf("%s (%s)", usage, strings.Join(choices, "|")))
	_ = cmd.RegisterFlagCompletionFunc(name, func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		var completions []cobra.Completion
		for _, choice := range choices {
			if strings.HasPrefix(choice, toComplete) {
				completions = append(completions, choice)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	})
}

// annotateEnv appends the environment variable viper reads for each flag
// to its usage.
func annotateEnv(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		f.Usage += fmt.Sprintf(" [$%s]", calc.EnvName(f.Name, envPrefix+"_"))
	})
}
