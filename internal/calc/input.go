package calc

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// SplitInputs expands raw arguments according to format. With
// InputFormatJson each argument is a JSON array of strings or a single JSON
// string, so the output of -f json can be passed back in. Blank entries are
// dropped by every format except InputFormatArgs, which returns raw as is.
func SplitInputs(format InputFormat, raw []string) ([]string, error) {
	switch format {
	case InputFormatArgs:
		return raw, nil
	case InputFormatJson:
		var result []string
		for _, r := range raw {
			r = strings.TrimSpace(r)
			if r == "" {
				continue
			}
			var arr []string
			if err := json.Unmarshal([]byte(r), &arr); err == nil {
				result = append(result, arr...)
				continue
			}
			var s string
			if err := json.Unmarshal([]byte(r), &s); err != nil {
				return nil, errors.Wrapf(ErrUsage, "invalid json input %s: %v", r, err)
			}
			result = append(result, s)
		}
		return result, nil
	case InputFormatNewline:
		return splitAndTrim(raw, "\r\n"), nil
	case InputFormatSpace:
		return splitAndTrim(raw, " \t"), nil
	default:
		return nil, errors.Wrapf(ErrUsage, "unsupported input format: %s", format)
	}
}

func splitAndTrim(raw []string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	var result []string
	for _, r := range raw {
		for _, part := range strings.FieldsFunc(r, isSep) {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
