package csvload

import (
	"fmt"
	"strings"
)

// normalizeMeetPath validates the MeetPath column's format and
// normalizes Windows-style separators. The canonical CSVs are produced
// by an external checker pipeline (out of scope here) that already
// derives MeetPath from a meet-data-relative filesystem path; this
// loader only re-validates the documented invariant — lowercase ASCII
// letters, digits, hyphens, and forward slashes — rather than
// re-deriving it from a filesystem layout it never sees.
func normalizeMeetPath(raw string) (string, error) {
	path := strings.ReplaceAll(raw, `\`, "/")
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	for _, c := range path {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '/':
		default:
			return "", fmt.Errorf("character %q not allowed (must be lowercase ascii, digits, hyphen, or slash)", c)
		}
	}
	return path, nil
}
