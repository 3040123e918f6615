package strx

import (
	"slices"
	"strings"
)

// ParseCSV splits comma separated values, trimming blanks and dropping empty
// and repeated entries. It returns nil when nothing is left.
func ParseCSV(values ...string) []string {
	var out []string
	for _, value := range values {
		for part := range strings.SplitSeq(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" || slices.Contains(out, part) {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
