package notation

import (
	"math"
	"testing"

	"github.com/vipcxj/intervals/interval"
)

func TestLowestHighest(t *testing.T) {
	cases := []struct {
		name         string
		i            interval.Interval[int64]
		lo, hi       int64
		hasLo, hasHi bool
	}{
		{"closed", MustParse[int64]("[1,3]"), 1, 3, true, true},
		{"open", MustParse[int64]("(1,5)"), 2, 4, true, true},
		{"universe", interval.Universe[int64](), math.MinInt64, math.MaxInt64, true, true},
		{"empty", interval.Empty[int64](), 0, 0, false, false},
	}
	for _, tc := range cases {
		lo, ok := Lowest(tc.i)
		if ok != tc.hasLo || lo != tc.lo {
			t.Fatalf("%s: Lowest() = (%d,%v), want (%d,%v)", tc.name, lo, ok, tc.lo, tc.hasLo)
		}
		hi, ok := Highest(tc.i)
		if ok != tc.hasHi || hi != tc.hi {
			t.Fatalf("%s: Highest() = (%d,%v), want (%d,%v)", tc.name, hi, ok, tc.hi, tc.hasHi)
		}
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		in, exp string
	}{
		{"(1,5)", "[2,4]"},
		{"(3,4)", "∅"},
		{"(3,4]", "4"},
		{"<1", "<=0"},
		{">=5", ">=5"},
		{"(,)", "(-∞,∞)"},
	}
	for _, tc := range cases {
		if got := String(Canonical(MustParse[int64](tc.in))); got != tc.exp {
			t.Fatalf("Canonical(%s) = %s, want %s", tc.in, got, tc.exp)
		}
	}
}

func TestCanonicalAll_ComplementOnIntegers(t *testing.T) {
	c := CanonicalAll(interval.ComplementOf(MustParse[int64]("[1,5)")))
	got := FormatAll(c, true)
	if len(got) != 2 || got[0] != "<=0" || got[1] != ">=5" {
		t.Fatalf("discrete complement of [1,5) = %q", got)
	}

	gaps := CanonicalAll(interval.NewCollection(MustParse[int64]("(1,2)"), MustParse[int64]("(7,9)")))
	if gaps.Len() != 1 || String(gaps.At(0)) != "8" {
		t.Fatalf("CanonicalAll = %s", gaps)
	}
}
