package calc

import (
	"errors"
	"testing"
)

func TestExportLine(t *testing.T) {
	cases := []struct {
		name    string
		shell   ShellType
		value   string
		persist bool
		exp     string
	}{
		{"sh_session", ShellTypeSh, "[1,5)", false, "R='[1,5)'"},
		{"sh_export", ShellTypeSh, "[1,5)", true, "export R='[1,5)'"},
		{"sh_quote", ShellTypeSh, "it's", true, `export R='it'\''s'`},
		{"sh_empty", ShellTypeSh, "", true, "export R=''"},
		{"powershell_session", ShellTypePowershell, "<1,>=5", false, "$Env:R = '<1,>=5'"},
		{"powershell_persist", ShellTypePowershell, "5", true, "[System.Environment]::SetEnvironmentVariable('R','5','User')"},
		{"powershell_newline", ShellTypePowershell, "<1\n>=5", false, "$Env:R = '<1' + \"`n\" + '>=5'"},
		{"cmd_session", ShellTypeCmd, "[1,5)", false, `set "R=[1,5)"`},
		{"cmd_persist", ShellTypeCmd, "[1,5)", true, `setx R ""[1,5)""`},
	}
	for _, tc := range cases {
		got, err := ExportLine(tc.shell, "R", tc.value, tc.persist)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.exp {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.exp)
		}
	}

	if _, err := ExportLine(ShellTypeSh, "", "x", false); !errors.Is(err, ErrUsage) {
		t.Fatalf("empty variable name: %v", err)
	}
}

func TestDecideShellType(t *testing.T) {
	detected := func(name string) func() (string, error) {
		return func() (string, error) { return name, nil }
	}
	cases := []struct {
		in     ShellType
		detect func() (string, error)
		exp    ShellType
	}{
		{ShellTypeCmd, nil, ShellTypeCmd},
		{ShellTypeAuto, detected("pwsh.exe"), ShellTypePowershell},
		{ShellTypeAuto, detected("PowerShell"), ShellTypePowershell},
		{ShellTypeAuto, detected("cmd.exe"), ShellTypeCmd},
		{ShellTypeAuto, detected("zsh"), ShellTypeSh},
	}
	for _, tc := range cases {
		got, err := decideShellType(tc.in, tc.detect)
		if err != nil {
			t.Fatalf("decideShellType(%s): %v", tc.in, err)
		}
		if got != tc.exp {
			t.Fatalf("decideShellType(%s) = %s, want %s", tc.in, got, tc.exp)
		}
	}

	failing := func() (string, error) { return "", errors.New("no shell") }
	if _, err := decideShellType(ShellTypeAuto, failing); err == nil {
		t.Fatalf("expected detection error")
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName("my-range", "APP_"); got != "APP_MY_RANGE" {
		t.Fatalf("EnvName = %q", got)
	}
}

func TestMatchShell(t *testing.T) {
	for name, exp := range map[string]bool{"bash": true, "PWSH.EXE": true, "go": false, "bashful": false} {
		if got := matchShell(name); got != exp {
			t.Fatalf("matchShell(%q) = %v", name, got)
		}
	}
}

func TestSplitPreserveNewlines(t *testing.T) {
	got := splitPreserveNewlines("a\r\nb\nc\r")
	exp := []string{"a", "\r\n", "b", "\n", "c", "\r"}
	if len(got) != len(exp) {
		t.Fatalf("got %q, want %q", got, exp)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("got %q, want %q", got, exp)
		}
	}
}
