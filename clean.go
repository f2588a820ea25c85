package tomlsort

import (
	"regexp"
	"strings"
)

var blankRun = regexp.MustCompile(`[\r\n][\r\n]{2,}`)

// CleanText normalizes line endings to LF, collapses runs of blank lines
// to a single one and surrounds the trimmed text with newlines.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = blankRun.ReplaceAllString(s, "\n\n")
	return "\n" + strings.TrimSpace(s) + "\n"
}

func formatComment(c string) string {
	if c == "" {
		return c
	}
	return strings.TrimSpace("# " + strings.TrimSpace(c[1:]))
}
