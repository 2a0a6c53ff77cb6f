package calc

import (
	"bytes"
	"testing"
)

func TestOutput(t *testing.T) {
	values := []string{"<1", ">=5"}
	cases := []struct {
		format OutputFormat
		values []string
		exp    string
	}{
		{OutputFormatComma, values, "<1,>=5"},
		{OutputFormatNewline, values, "<1\n>=5"},
		{OutputFormatSpace, values, "<1 >=5"},
		{OutputFormatJson, values, `["<1",">=5"]`},
		{OutputFormatJson, nil, "[]"},
		{OutputFormatComma, nil, ""},
	}
	for _, tc := range cases {
		got, err := Output(tc.format, tc.values)
		if err != nil {
			t.Fatalf("Output(%s): %v", tc.format, err)
		}
		if got != tc.exp {
			t.Fatalf("Output(%s) = %q, want %q", tc.format, got, tc.exp)
		}
	}
	if _, err := Output(OutputFormat(10), values); err == nil {
		t.Fatalf("Output accepted an unknown format")
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, Options{Format: OutputFormatSpace}, []string{"[1,2]", "4"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[1,2] 4\n" {
		t.Fatalf("Emit = %q", got)
	}

	buf.Reset()
	opts := Options{Export: "RANGE", Shell: ShellTypeSh, Persist: true}
	if err := Emit(&buf, opts, []string{"[1,2]", "4"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "export RANGE='[1,2],4'\n" {
		t.Fatalf("Emit export = %q", got)
	}
}

func TestEmit_JsonKeepsComparisonSigns(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, Options{Format: OutputFormatJson}, []string{"<1", ">=5", "(2,3]"}); err != nil {
		t.Fatal(err)
	}
	if got, exp := buf.String(), "[\"<1\",\">=5\",\"(2,3]\"]\n"; got != exp {
		t.Fatalf("Emit(json) = %q, want %q", got, exp)
	}
}
