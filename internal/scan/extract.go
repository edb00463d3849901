package scan

import (
	"errors"
	"strings"
)

// ErrNoJSONFound indicates the command output contained no JSON document.
var ErrNoJSONFound = errors.New("no JSON document found in command output")

// ExtractJSON isolates the JSON document embedded in raw command output.
// The az CLI may print informational lines to stdout before its payload, so
// the output is scanned from the top and everything before the first line
// whose trimmed content starts with '{' or '[' is discarded. The remainder
// is returned as-is and must parse as JSON or the next stage fails.
//
// The first matching line wins even if it is a false positive inside a
// larger preamble; no brace matching or bottom-up scan is attempted.
func ExtractJSON(raw string) (string, error) {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			return strings.Join(lines[i:], "\n"), nil
		}
	}
	return "", ErrNoJSONFound
}
