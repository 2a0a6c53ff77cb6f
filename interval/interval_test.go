package interval

import (
	"errors"
	"math"
	"testing"
)

func TestNewInterval_Errors(t *testing.T) {
	cases := []struct {
		name string
		make func() (Interval[int], error)
	}{
		{"lower_after_upper", func() (Interval[int], error) { return Closed(5, 1) }},
		{"zero_width_mixed", func() (Interval[int], error) { return ClosedOpen(3, 3) }},
		{"zero_width_mixed_reversed", func() (Interval[int], error) { return OpenClosed(3, 3) }},
		{"wrong_sides", func() (Interval[int], error) {
			return New(mustBound(t, SideUpper, DirectionClosed, 1), mustBound(t, SideLower, DirectionClosed, 2))
		}},
		{"two_lowers", func() (Interval[int], error) {
			return New(mustBound(t, SideLower, DirectionClosed, 1), mustBound(t, SideLower, DirectionClosed, 2))
		}},
	}
	for _, tc := range cases {
		if _, err := tc.make(); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
	}

	if _, err := AtLeast(math.Inf(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("closed ray on +Inf: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := AtMost(math.Inf(-1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("closed ray on -Inf: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := SingletonOf(math.Inf(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("singleton of +Inf: expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewInterval_Valid(t *testing.T) {
	cases := []struct {
		name string
		i    Interval[int]
		exp  string
	}{
		{"closed", Must(Closed(1, 5)), "[1, 5]"},
		{"open", Must(Open(1, 5)), "(1, 5)"},
		{"closed_open", Must(ClosedOpen(1, 5)), "[1, 5)"},
		{"open_closed", Must(OpenClosed(1, 5)), "(1, 5]"},
		{"singleton", Must(Closed(3, 3)), "[3, 3]"},
		{"open_zero_width_is_empty", Must(Open(3, 3)), "∅"},
		{"at_least", Must(AtLeast(3)), "[3, 9223372036854775807]"},
		{"less_than", Must(LessThan(3)), "[-9223372036854775808, 3)"},
	}
	for _, tc := range cases {
		if got := tc.i.String(); got != tc.exp {
			t.Fatalf("%s: String() = %q, want %q", tc.name, got, tc.exp)
		}
	}

	gt := Must(GreaterThan(2.5))
	if got := gt.String(); got != "(2.5, +∞)" {
		t.Fatalf("GreaterThan(2.5) = %q", got)
	}
	le := Must(AtMost(2.5))
	if got := le.String(); got != "(-∞, 2.5]" {
		t.Fatalf("AtMost(2.5) = %q", got)
	}
}

func TestTryParse(t *testing.T) {
	i := Must(ClosedOpen(1, 5))
	got, ok := TryParse(i.LowerBound(), i.UpperBound())
	if !ok || !got.Equal(i) {
		t.Fatalf("TryParse(%s, %s) = %s, %v", i.LowerBound(), i.UpperBound(), got, ok)
	}
	if _, ok := TryParse(i.UpperBound(), i.LowerBound()); ok {
		t.Fatalf("TryParse accepted swapped bounds")
	}
	lo := mustBound(t, SideLower, DirectionClosed, 9)
	hi := mustBound(t, SideUpper, DirectionClosed, 2)
	if _, ok := TryParse(lo, hi); ok {
		t.Fatalf("TryParse accepted [9, 2]")
	}
}

func TestInterval_Predicates(t *testing.T) {
	if !Empty[int]().IsEmpty() {
		t.Fatalf("Empty is not empty")
	}
	if !(Interval[int]{}).IsEmpty() {
		t.Fatalf("zero Interval is not empty")
	}
	if !Empty[int]().Equal(Must(Open(7, 7))) {
		t.Fatalf("empty intervals should all be equal")
	}
	if Empty[int]().Equal(Must(SingletonOf(0))) {
		t.Fatalf("Empty equals the singleton of zero")
	}

	five := Must(SingletonOf(5))
	if !five.IsSingletonOf(5) || five.IsSingletonOf(6) {
		t.Fatalf("IsSingletonOf broken for %s", five)
	}
	if v, ok := five.SingleValue(); !ok || v != 5 {
		t.Fatalf("SingleValue() = %d, %v", v, ok)
	}
	if _, ok := Must(Closed(1, 2)).SingleValue(); ok {
		t.Fatalf("[1, 2] reported a single value")
	}
	if five.Contains(6) || !five.Contains(5) {
		t.Fatalf("Contains broken for %s", five)
	}

	iu := Universe[int]()
	if !iu.IsUniverse() || !iu.Contains(math.MinInt) || !iu.Contains(math.MaxInt) {
		t.Fatalf("integer universe %s does not cover its extremes", iu)
	}
	fu := Universe[float64]()
	if !fu.IsUniverse() || fu.Contains(math.Inf(1)) || fu.Contains(math.Inf(-1)) || !fu.Contains(math.MaxFloat64) {
		t.Fatalf("float universe %s has wrong membership", fu)
	}
	if fu.String() != "(-∞, +∞)" {
		t.Fatalf("float universe renders as %q", fu)
	}
	if Must(Closed(1, 5)).IsUniverse() {
		t.Fatalf("[1, 5] reported as universe")
	}
}

func TestInterval_Complement(t *testing.T) {
	cases := []struct {
		name string
		i    Interval[int64]
		exp  string
	}{
		{"closed_open", Must(ClosedOpen[int64](1, 5)), "{[-9223372036854775808, 1); [5, 9223372036854775807]}"},
		{"open_min", Must(OpenClosed[int64](math.MinInt64, 5)), "{[-9223372036854775808, -9223372036854775808]; (5, 9223372036854775807]}"},
		{"ray_up", Must(AtLeast[int64](0)), "{[-9223372036854775808, 0)}"},
		{"universe", Universe[int64](), "∅"},
		{"empty", Empty[int64](), "{[-9223372036854775808, 9223372036854775807]}"},
	}
	for _, tc := range cases {
		if got := tc.i.Complement().String(); got != tc.exp {
			t.Fatalf("%s: complement of %s = %s, want %s", tc.name, tc.i, got, tc.exp)
		}
	}

	fcases := []struct {
		i   Interval[float64]
		exp string
	}{
		{Must(GreaterThan(3.0)), "{(-∞, 3]}"},
		{Must(Closed(1.0, 2.0)), "{(-∞, 1); (2, +∞)}"},
		{Universe[float64](), "∅"},
	}
	for _, tc := range fcases {
		if got := tc.i.Complement().String(); got != tc.exp {
			t.Fatalf("complement of %s = %s, want %s", tc.i, got, tc.exp)
		}
	}
}

func TestInterval_IntersectionWith(t *testing.T) {
	cases := []struct {
		a, b Interval[int]
		exp  string
	}{
		{Must(ClosedOpen(1, 5)), Must(OpenClosed(3, 8)), "(3, 5)"},
		{Must(Closed(1, 3)), Must(Closed(3, 5)), "[3, 3]"},
		{Must(ClosedOpen(1, 3)), Must(Closed(3, 5)), "∅"},
		{Must(Closed(1, 9)), Must(Open(2, 4)), "(2, 4)"},
		{Must(Closed(1, 9)), Empty[int](), "∅"},
		{Universe[int](), Must(Closed(1, 2)), "[1, 2]"},
	}
	for _, tc := range cases {
		got := tc.a.IntersectionWith(tc.b)
		if got.String() != tc.exp {
			t.Fatalf("%s ∩ %s = %s, want %s", tc.a, tc.b, got, tc.exp)
		}
		if rev := tc.b.IntersectionWith(tc.a); !rev.Equal(got) {
			t.Fatalf("intersection not commutative: %s vs %s", got, rev)
		}
	}
}

func TestInterval_UnionAndDifferenceWith(t *testing.T) {
	cases := []struct {
		name string
		got  Collection[int]
		exp  string
	}{
		{"touching_closed", Must(Closed(1, 3)).UnionWith(Must(OpenClosed(3, 5))), "{[1, 5]}"},
		{"gap_on_point", Must(ClosedOpen(1, 3)).UnionWith(Must(OpenClosed(3, 5))), "{[1, 3); (3, 5]}"},
		{"disjoint", Must(Closed(4, 5)).UnionWith(Must(Closed(1, 2))), "{[1, 2]; [4, 5]}"},
		{"with_empty", Must(Closed(1, 2)).UnionWith(Empty[int]()), "{[1, 2]}"},
		{"hole", Must(Closed(1, 10)).DifferenceWith(Must(Closed(3, 4))), "{[1, 3); (4, 10]}"},
		{"cut_right", Must(Closed(1, 10)).DifferenceWith(Must(AtLeast(5))), "{[1, 5)}"},
		{"covered", Must(Closed(3, 4)).DifferenceWith(Must(Closed(1, 10))), "∅"},
		{"disjoint_diff", Must(Closed(1, 2)).DifferenceWith(Must(Closed(5, 6))), "{[1, 2]}"},
	}
	for _, tc := range cases {
		if got := tc.got.String(); got != tc.exp {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.exp)
		}
	}
}

func TestInterval_Compare(t *testing.T) {
	cases := []struct {
		a, b Interval[int]
		exp  int
	}{
		{Must(Closed(1, 3)), Must(Closed(2, 3)), -1},
		{Must(Closed(1, 3)), Must(OpenClosed(1, 2)), -1},
		{Must(Closed(1, 3)), Must(Closed(1, 2)), 1},
		{Must(Closed(1, 3)), Must(ClosedOpen(1, 3)), 1},
		{Must(Closed(1, 3)), Must(Closed(1, 3)), 0},
	}
	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.exp {
			t.Fatalf("%s.Compare(%s) = %d, want %d", tc.a, tc.b, got, tc.exp)
		}
	}
}
