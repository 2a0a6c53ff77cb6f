package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vipcxj/intervals/internal/calc"
	"github.com/vipcxj/intervals/interval"
)

func newContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "contains <interval> <value>",
		Short:   "Print whether the interval contains the value",
		Example: "  intervals contains '[1,5)' 5",
		Args:    cobra.ExactArgs(2),
		RunE:    a.run(calc.OperationContains),
	}
}

func newComplementCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complement <interval>...",
		Short: "Print the values of the domain outside every interval",
		Example: `  intervals complement '[1,5)'
  intervals complement --discrete '[1,5)' '[8,9]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(calc.OperationComplement),
	}
}

func newIntersectCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "intersect <interval>...",
		Short: "Print the values common to all intervals",
		Example: `  intervals intersect '[1,5)' '(3,8]'
  intervals intersect --check '[1,2]' '[3,4]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(calc.OperationIntersect),
	}
	c.Flags().Bool("check", false, "Only print whether the two intervals share a value")
	return c
}

func newUnionCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "union <interval>...",
		Short: "Print the values in any interval",
		Long: `Print the values in any interval.

With --denominator highest (the default) touching and overlapping intervals
are merged. With --denominator lowest the result is the finest split in
which every fragment is covered by the same inputs.`,
		Example: "  intervals union --denominator lowest '[1,5)' '(3,8]'",
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.run(calc.OperationUnion),
	}
	addEnumFlag(c, c.Flags(), "denominator", "", interval.DenominatorHighest, interval.DenominatorString,
		interval.DenominatorStrings(), "Merge policy")
	return c
}

func newDifferenceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "difference <interval> <subtrahend>...",
		Short:   "Print the values of the first interval that are in none of the others",
		Example: "  intervals difference '[0,10]' '[3,4]'",
		Args:    cobra.MinimumNArgs(2),
		RunE:    a.run(calc.OperationDifference),
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "describe <interval>",
		Short:   "Print the bounds and predicates of an interval",
		Example: "  intervals describe '(,3]'",
		Args:    cobra.ExactArgs(1),
		RunE:    a.run(calc.OperationDescribe),
	}
}

func newUniverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "universe",
		Short: "Print the interval spanning the whole domain",
		Args:  cobra.NoArgs,
		RunE:  a.run(calc.OperationUniverse),
	}
}

func newEmptyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "empty",
		Short: "Print the empty interval",
		Args:  cobra.NoArgs,
		RunE:  a.run(calc.OperationEmpty),
	}
}

func newNaturalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "natural <filter> [value]...",
		Short: "Normalize a natural number filter or select the values it accepts",
		Long: `Normalize a natural number filter or select the values it accepts.

A filter joins tokens with '_': "all", "N", "N-M", "N-" (at least N) and
"-M" (at most M), with numbers non-decreasing from left to right. Without
values the normalized filter is printed, otherwise the values it accepts.`,
		Example: `  intervals natural 1-3_4_9-
  intervals natural 1-3_9- 0 2 5 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(calc.OperationNatural),
	}
}
