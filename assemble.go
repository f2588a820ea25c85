package tomlsort

import (
	"slices"

	"github.com/signadot/tomlsort/debug"
	"github.com/signadot/tomlsort/ir"
)

func (s *Sorter) assemble(items []*SortItem, header, footer []*ir.Node) *ir.Node {
	doc := ir.NewDocument()
	if s.comments.Header {
		for _, c := range header {
			doc.AddTrivia(c)
		}
		doc.AddTrivia(ir.Whitespace("\n"))
	}
	for _, it := range s.sortChildren(nil, items) {
		attachComments(it, doc)
		doc.Add(it.Key, s.assembleItem(it, doc))
	}
	if len(header) == 0 || !s.comments.Header {
		s.leadingComments(doc)
	}
	if s.comments.Footer && len(footer) > 0 {
		doc.AddTrivia(ir.Whitespace("\n"))
		for _, c := range footer {
			doc.AddTrivia(c)
		}
	}
	return doc
}

// leadingComments handles block comments which sorting moved to the top
// of a document without a header. Read back, they form the header, so they
// get the header's blank line, or are dropped along with header comments.
//
// Either way the comment loses its key: with header comments off it is
// deleted, and with them on a blank line separates it from the key it
// described. A second run must produce the same text, which rules out
// keeping it attached.
func (s *Sorter) leadingComments(doc *ir.Node) {
	i := 0
	for i < len(doc.Body) && doc.Body[i].Key == nil && doc.Body[i].Value.Type == ir.WhitespaceType {
		i++
	}
	j := i
	for j < len(doc.Body) && doc.Body[j].Key == nil && doc.Body[j].Value.Type == ir.CommentType {
		j++
	}
	switch {
	case i == j:
	case !s.comments.Header:
		doc.Body = slices.Delete(doc.Body, i, j)
	case j < len(doc.Body) && doc.Body[j].Key != nil:
		doc.Body = slices.Insert(doc.Body, j, &ir.Entry{Value: ir.Whitespace("\n")})
	}
}

// assembleItem fills the table or array of tables of it. parent is the
// container that comments of its first child go to when it has no header
// of its own.
func (s *Sorter) assembleItem(it *SortItem, parent *ir.Node) *ir.Node {
	switch {
	case it.IsTable():
		t := it.Value
		for _, child := range s.sortChildren(it.Path, it.Children) {
			prev := previousTarget(t, parent)
			attachComments(child, prev)
			t.Add(child.Key, s.assembleItem(child, prev))
		}
		return t
	case it.IsAoT():
		a := it.Value
		prev := parent
		for _, el := range it.Children {
			attachComments(el, prev)
			v := s.assembleItem(el, prev)
			a.Append(v)
			prev = v
		}
		return a
	default:
		return it.Value
	}
}

// previousTarget returns the node which renders just before the next child
// of t: t itself, or for a super table the last table emitted in it.
func previousTarget(t, parent *ir.Node) *ir.Node {
	if !t.IsSuper {
		return t
	}
	if t.Len() == 0 {
		return parent
	}
	if last := t.Last(); last.Type == ir.TableType {
		return last
	}
	return t
}

// attachComments writes the comments of it at the end of prev. A table
// with comments gets a blank line above the comments instead of above its
// header.
func attachComments(it *SortItem, prev *ir.Node) {
	if len(it.Comments) == 0 {
		return
	}
	if debug.Assemble() {
		debug.Logf("attach %d comments for %s to %s\n", len(it.Comments), it.Path, prev.Type)
	}
	if it.IsTable() {
		prev.AddTrivia(ir.Whitespace("\n"))
		it.Value.Trivia.Indent = ""
	}
	for _, c := range it.Comments {
		prev.AddTrivia(c)
	}
}
