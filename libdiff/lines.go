// Package libdiff computes line diffs between a document and its sorted
// form.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Hunk is a run of changed lines. Lines are 0-based; a Hunk which only
// inserts has FromCount 0 and FromLine is the line it inserts before.
type Hunk struct {
	FromLine  int
	FromCount int
	ToLine    int
	ToCount   int

	Deleted  []string
	Inserted []string
}

// Lines returns the hunks turning from into to.
func Lines(from, to string) []Hunk {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var (
		res    []Hunk
		cur    *Hunk
		fl, tl int
	)
	flush := func() {
		if cur != nil {
			res = append(res, *cur)
			cur = nil
		}
	}
	for i := range diffs {
		d := &diffs[i]
		ls := splitLines(d.Text)
		if d.Type == diffpatch.DiffEqual {
			flush()
			fl += len(ls)
			tl += len(ls)
			continue
		}
		if cur == nil {
			cur = &Hunk{FromLine: fl, ToLine: tl}
		}
		switch d.Type {
		case diffpatch.DiffDelete:
			cur.Deleted = append(cur.Deleted, ls...)
			cur.FromCount += len(ls)
			fl += len(ls)
		case diffpatch.DiffInsert:
			cur.Inserted = append(cur.Inserted, ls...)
			cur.ToCount += len(ls)
			tl += len(ls)
		}
	}
	flush()
	return res
}

// splitLines splits s after each newline. A final line without a newline
// is kept.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}
