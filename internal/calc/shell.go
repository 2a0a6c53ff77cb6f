package calc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/process"
)

// EnvName turns a flag-like key such as "my-range" into MY_RANGE, with
// prefix prepended.
func EnvName(key, prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// splitPreserveNewlines splits s around line breaks, keeping each "\r\n",
// "\r" and "\n" as its own element: "a\r\nb\nc" -> ["a", "\r\n", "b", "\n", "c"].
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\r' && ch != '\n' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
		if ch == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i += 2
		} else {
			parts = append(parts, string(ch))
			i++
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// buildShellLiteral single-quotes s for POSIX shells. Embedded single quotes
// become '\'' and newlines need no escaping.
func buildShellLiteral(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// buildPowershellLiteral returns a single PowerShell expression, joining
// quoted pieces and escaped line breaks with +.
func buildPowershellLiteral(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

func buildCmdLiteral(s string) string {
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, `"\\n"`)
		case "\r":
			out = append(out, `"\\r"`)
		case "\r\n":
			out = append(out, `"\\r\\n"`)
		default:
			escaped := strings.ReplaceAll(p, `"`, `\"`)
			out = append(out, `"`+escaped+`"`)
		}
	}
	return strings.Join(out, "")
}

func exportEnvVarCmdLike(varName, val string, persist bool) string {
	escaped := buildCmdLiteral(val)
	if persist {
		return fmt.Sprintf("setx %s \"%s\"", varName, escaped)
	}
	return fmt.Sprintf("set \"%s=%s\"", varName, strings.Trim(escaped, `"`))
}

func exportEnvVarLinuxLike(varName, val string, persist bool) string {
	quoted := buildShellLiteral(val)
	if persist {
		return fmt.Sprintf("export %s=%s", varName, quoted)
	}
	return fmt.Sprintf("%s=%s", varName, quoted)
}

func escapeForPS(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func exportEnvVarPowershellLike(varName, val string, persist bool) string {
	escaped := buildPowershellLiteral(val)
	if persist {
		return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", escapeForPS(varName), escaped)
	}
	return fmt.Sprintf("$Env:%s = %s", varName, escaped)
}

// ExportLine renders an assignment of val to varName for shellType. With
// persist set, sh exports the variable and Windows shells store it for the
// user.
func ExportLine(shellType ShellType, varName, val string, persist bool) (string, error) {
	if varName == "" {
		return "", errors.Wrap(ErrUsage, "empty variable name")
	}
	shellType, err := decideShellType(shellType, detectUserShell)
	if err != nil {
		return "", err
	}
	switch shellType {
	case ShellTypeSh:
		return exportEnvVarLinuxLike(varName, val, persist), nil
	case ShellTypePowershell:
		return exportEnvVarPowershellLike(varName, val, persist), nil
	case ShellTypeCmd:
		return exportEnvVarCmdLike(varName, val, persist), nil
	default:
		return "", errors.Wrapf(ErrUsage, "unsupported shell type: %v", shellType)
	}
}

func decideShellType(shellType ShellType, detect func() (string, error)) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	}
	shellName, err := detect()
	if err != nil {
		return ShellTypeAuto, errors.Wrap(err, "cannot detect user shell")
	}
	switch strings.TrimSuffix(strings.ToLower(shellName), ".exe") {
	case "powershell", "pwsh":
		return ShellTypePowershell, nil
	case "cmd":
		return ShellTypeCmd, nil
	default:
		return ShellTypeSh, nil
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks up the parent process chain looking for a known
// shell, and falls back to $SHELL or %COMSPEC%, which only name the default
// shell.
func detectUserShell() (string, error) {
	if name, ok := shellFromProcessTree(int32(os.Getppid())); ok {
		return name, nil
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", errors.New("user shell not detected")
}

func shellFromProcessTree(pid int32) (string, bool) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", false
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		exe, _ := p.Exe()
		if name == "" && exe != "" {
			name = filepath.Base(exe)
		}
		if matchShell(name) {
			return name, true
		}

		parent, err := p.Parent()
		if err != nil || parent == nil {
			break
		}
		p = parent
	}
	return "", false
}

func matchShell(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	for _, k := range knownShells {
		if n == k {
			return true
		}
	}
	return false
}
