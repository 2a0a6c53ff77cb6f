package calc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Output joins values according to format. JSON output is always an array,
// so an empty result prints as "[]".
func Output(format OutputFormat, values []string) (string, error) {
	if format == OutputFormatJson {
		if values == nil {
			values = []string{}
		}
		// Rays render as <N and >=N, which the default encoder would escape.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(values); err != nil {
			return "", errors.Wrap(err, "failed to marshal values to json")
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	}
	var sep string
	switch format {
	case OutputFormatComma:
		sep = ","
	case OutputFormatNewline:
		sep = "\n"
	case OutputFormatSpace:
		sep = " "
	default:
		return "", errors.Wrapf(ErrUsage, "unsupported output format: %s", format)
	}
	return strings.Join(values, sep), nil
}

// Emit writes values to w joined per opts.Format, or as an assignment to
// opts.Export in the target shell's syntax when a variable is named.
func Emit(w io.Writer, opts Options, values []string) error {
	text, err := Output(opts.Format, values)
	if err != nil {
		return err
	}
	if opts.Export != "" {
		if text, err = ExportLine(opts.Shell, opts.Export, text, opts.Persist); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
