package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Context is the number of unchanged lines shown around each hunk by
// Unified.
const Context = 3

// Unified renders the diff from from to to in unified format under the
// names fromName and toName. It returns "" when the texts are equal.
func Unified(fromName, toName, from, to string, colors bool) string {
	hunks := Lines(from, to)
	if len(hunks) == 0 {
		return ""
	}
	var (
		del  = color.New(color.FgRed)
		ins  = color.New(color.FgGreen)
		head = color.New(color.FgCyan)
		bold = color.New(color.Bold)
	)
	for _, c := range []*color.Color{del, ins, head, bold} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	fromLines := splitLines(from)
	buf := &strings.Builder{}
	bold.Fprintf(buf, "--- %s\n", fromName)
	bold.Fprintf(buf, "+++ %s\n", toName)
	for _, g := range group(hunks) {
		first, last := g[0], g[len(g)-1]
		start := max(0, first.FromLine-Context)
		end := min(len(fromLines), last.FromLine+last.FromCount+Context)
		toStart := first.ToLine - (first.FromLine - start)
		toCount := end - start
		for _, h := range g {
			toCount += h.ToCount - h.FromCount
		}
		head.Fprintf(buf, "@@ -%s +%s @@\n", span(start, end-start), span(toStart, toCount))
		pos := start
		for _, h := range g {
			writeLines(buf, nil, " ", fromLines[pos:h.FromLine])
			writeLines(buf, del, "-", h.Deleted)
			writeLines(buf, ins, "+", h.Inserted)
			pos = h.FromLine + h.FromCount
		}
		writeLines(buf, nil, " ", fromLines[pos:end])
	}
	return buf.String()
}

// group joins hunks whose context would overlap.
func group(hunks []Hunk) [][]Hunk {
	var res [][]Hunk
	for i, h := range hunks {
		if i == 0 {
			res = append(res, []Hunk{h})
			continue
		}
		g := res[len(res)-1]
		prev := g[len(g)-1]
		if h.FromLine-(prev.FromLine+prev.FromCount) <= 2*Context {
			res[len(res)-1] = append(g, h)
			continue
		}
		res = append(res, []Hunk{h})
	}
	return res
}

func span(start, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	if count == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	return fmt.Sprintf("%d,%d", start+1, count)
}

func writeLines(buf *strings.Builder, c *color.Color, prefix string, lines []string) {
	for _, l := range lines {
		l = strings.TrimSuffix(l, "\n")
		if c == nil {
			buf.WriteString(prefix + l + "\n")
			continue
		}
		c.Fprintln(buf, prefix+l)
	}
}
