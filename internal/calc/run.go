package calc

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vipcxj/intervals/internal/notation"
	"github.com/vipcxj/intervals/interval"
)

// ErrUsage is returned when an operation gets the wrong arguments or an
// option that does not apply to it.
var ErrUsage = errors.New("invalid usage")

// Evaluate runs op over args and returns the rendered result, one entry per
// fragment.
func Evaluate(op Operation, opts Options, args []string) ([]string, error) {
	if !op.IsAOperation() {
		return nil, errors.Wrapf(ErrUsage, "unknown operation %s", op)
	}
	if opts.Discrete && opts.Domain != DomainKindInt {
		return nil, errors.Wrapf(ErrUsage, "--discrete needs the int domain, got %s", opts.Domain)
	}
	args, err := SplitInputs(opts.Input, args)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{"op": op.String(), "domain": opts.Domain.String()})

	var out []string
	if op == OperationNatural {
		if opts.Domain != DomainKindInt {
			return nil, errors.Wrapf(ErrUsage, "natural needs the int domain, got %s", opts.Domain)
		}
		if out, err = natural(args); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"args": args, "result": out}).Debug("evaluated")
		return out, nil
	}
	switch opts.Domain {
	case DomainKindInt:
		out, err = evaluator[int64]{opts: opts, log: log}.run(op, args)
	case DomainKindFloat:
		out, err = evaluator[float64]{opts: opts, log: log}.run(op, args)
	default:
		return nil, errors.Wrapf(ErrUsage, "unknown domain %s", opts.Domain)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"args": args, "result": out}).Debug("evaluated")
	return out, nil
}

type evaluator[T notation.Number] struct {
	opts Options
	log  logrus.FieldLogger
}

func (e evaluator[T]) run(op Operation, args []string) ([]string, error) {
	switch op {
	case OperationUniverse, OperationEmpty:
		if err := expectArgs(op, args, 0, 0); err != nil {
			return nil, err
		}
		if op == OperationUniverse {
			return e.render(interval.NewCollection(interval.Universe[T]())), nil
		}
		return e.render(interval.Collection[T]{}), nil
	case OperationContains:
		return e.contains(args)
	case OperationDescribe:
		return e.describe(args)
	}

	if err := expectArgs(op, args, 1, -1); err != nil {
		return nil, err
	}
	items, err := notation.ParseAll[T](args)
	if err != nil {
		return nil, err
	}
	e.log.WithField("parsed", items).Debug("parsed arguments")

	switch op {
	case OperationComplement:
		if len(items) == 1 {
			return e.render(interval.ComplementOf(items[0])), nil
		}
		return e.render(interval.ComplementOfCollection(interval.NewCollection(items...))), nil
	case OperationIntersect:
		if e.opts.Check {
			if len(items) != 2 {
				return nil, errors.Wrapf(ErrUsage, "intersect --check takes exactly 2 intervals, got %d", len(items))
			}
			return []string{strconv.FormatBool(interval.Intersect(items[0], items[1]))}, nil
		}
		return e.render(interval.NewCollection(interval.IntersectionOf(items[0], items[1:]...))), nil
	case OperationUnion:
		c, err := interval.UnionOf(e.opts.Denominator, items...)
		if err != nil {
			return nil, err
		}
		return e.render(c), nil
	case OperationDifference:
		if len(items) < 2 {
			return nil, errors.Wrapf(ErrUsage, "difference takes at least 2 intervals, got %d", len(items))
		}
		if len(items) == 2 {
			return e.render(interval.DifferenceOf(items[0], items[1])), nil
		}
		return e.render(interval.DifferenceOfCollection(
			interval.NewCollection(items[0]),
			interval.NewCollection(items[1:]...),
		)), nil
	}
	return nil, errors.Wrapf(ErrUsage, "unsupported operation %s", op)
}

func (e evaluator[T]) contains(args []string) ([]string, error) {
	if err := expectArgs(OperationContains, args, 2, 2); err != nil {
		return nil, err
	}
	i, err := notation.Parse[T](args[0], false)
	if err != nil {
		return nil, err
	}
	value, err := notation.ParseValue[T](strings.TrimPrefix(strings.TrimSpace(args[1]), "="))
	if err != nil {
		return nil, errors.Wrapf(ErrUsage, "%q is not a single value", args[1])
	}
	return []string{strconv.FormatBool(interval.Contains(i, value))}, nil
}

func (e evaluator[T]) describe(args []string) ([]string, error) {
	if err := expectArgs(OperationDescribe, args, 1, 1); err != nil {
		return nil, err
	}
	i, err := notation.Parse[T](args[0], false)
	if err != nil {
		return nil, err
	}
	out := []string{
		"interval=" + i.String(),
		"empty=" + strconv.FormatBool(i.IsEmpty()),
		"universe=" + strconv.FormatBool(i.IsUniverse()),
		"singleton=" + strconv.FormatBool(i.IsSingleton()),
	}
	if !i.IsEmpty() {
		out = append(out,
			"lower="+i.LowerBound().String(),
			"upper="+i.UpperBound().String(),
		)
	}
	return out, nil
}

// natural parses args[0] as a natural number filter. Without further
// arguments it returns the normalized filter; otherwise the arguments the
// filter accepts, in their original order.
func natural(args []string) ([]string, error) {
	if err := expectArgs(OperationNatural, args, 1, -1); err != nil {
		return nil, err
	}
	f, err := notation.ParseNatural(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if f.IsEmpty() {
			return []string{"∅"}, nil
		}
		return []string{f.String()}, nil
	}
	var out []string
	for _, arg := range args[1:] {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "%q is not an integer", arg)
		}
		if f.Test(n) {
			out = append(out, arg)
		}
	}
	return out, nil
}

// render formats every fragment of c, canonicalising integer fragments
// first when Discrete is set.
func (e evaluator[T]) render(c interval.Collection[T]) []string {
	if e.opts.Discrete {
		if ints, ok := any(c).(interval.Collection[int64]); ok {
			c = any(notation.CanonicalAll(ints)).(interval.Collection[T])
		}
	}
	return notation.FormatAll(c, true)
}

// expectArgs checks that args has between lo and hi entries; hi < 0 means
// no upper limit.
func expectArgs(op Operation, args []string, lo, hi int) error {
	n := len(args)
	switch {
	case n < lo && lo == hi:
		return errors.Wrapf(ErrUsage, "%s takes %d arguments, got %d", op, lo, n)
	case n < lo:
		return errors.Wrapf(ErrUsage, "%s takes at least %d arguments, got %d", op, lo, n)
	case hi >= 0 && n > hi && lo == hi:
		return errors.Wrapf(ErrUsage, "%s takes %d arguments, got %d", op, lo, n)
	case hi >= 0 && n > hi:
		return errors.Wrapf(ErrUsage, "%s takes at most %d arguments, got %d", op, hi, n)
	}
	return nil
}
