package tomlsort

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/tomlsort/debug"
	"github.com/signadot/tomlsort/ir"
)

// normalizeTrivia clears the indentation of n, ends its line and formats
// or drops its same line comment.
func (s *Sorter) normalizeTrivia(n *ir.Node, keepComment bool) *ir.Node {
	t := &n.Trivia
	t.Indent = ""
	t.Trail = "\n"
	if t.Comment == "" {
		return n
	}
	if keepComment {
		t.CommentWS = strings.Repeat(" ", s.format.SpacesBeforeInlineComment)
		t.Comment = formatComment(t.Comment)
	} else {
		t.Comment = ""
		t.CommentWS = ""
	}
	return n
}

// stripHeader splits the leading blank lines and comment lines off body.
func (s *Sorter) stripHeader(body []*ir.Entry) ([]*ir.Node, []*ir.Entry) {
	i := 0
	for i < len(body) && body[i].Key == nil && body[i].Value.Type == ir.WhitespaceType {
		i++
	}
	var header []*ir.Node
	for i < len(body) && body[i].Key == nil && body[i].Value.Type == ir.CommentType {
		header = append(header, s.normalizeTrivia(body[i].Value, true))
		i++
	}
	return header, body[i:]
}

// build turns a body into sort items. Comment lines are held until the
// next keyed entry, which they are attached to; a blank line drops them.
// The comments still held at the end of the body are returned.
func (s *Sorter) build(body []*ir.Entry, parent Path) ([]*SortItem, []*ir.Node, error) {
	var (
		items   []*SortItem
		pending []*ir.Node
	)
	for _, e := range body {
		if e.Value == nil {
			return nil, nil, &MalformedError{Path: parent, Reason: "entry without a value"}
		}
		if e.Key == nil {
			switch e.Value.Type {
			case ir.WhitespaceType:
				pending = nil
			case ir.CommentType:
				if s.comments.Block {
					pending = append(pending, s.normalizeTrivia(e.Value, true))
				}
			default:
				return nil, nil, &MalformedError{Path: parent, Reason: fmt.Sprintf("%s without a key", e.Value.Type)}
			}
			continue
		}
		path := parent.Child(e.Key)
		var (
			item *SortItem
			err  error
		)
		switch e.Value.Type {
		case ir.TableType:
			pending, item, err = s.buildTable(pending, e.Key, path, e.Value)
		case ir.AoTType:
			pending, item, err = s.buildAoT(pending, e.Key, path, e.Value)
		case ir.ScalarType, ir.ArrayType, ir.InlineTableType:
			item = &SortItem{
				Key:      e.Key,
				Path:     path,
				Value:    s.normalizeTrivia(e.Value, s.comments.Inline),
				Comments: pending,
			}
			pending = nil
		default:
			err = &MalformedError{Path: path, Reason: fmt.Sprintf("unexpected %s value", e.Value.Type)}
		}
		if err != nil {
			return nil, nil, err
		}
		if debug.Build() {
			debug.Logf("build %s %s with %d comments\n", path, item.Value.Type, len(item.Comments))
		}
		items = append(items, item)
	}
	return items, pending, nil
}

func (s *Sorter) buildTable(pending []*ir.Node, key *ir.Key, path Path, t *ir.Node) ([]*ir.Node, *SortItem, error) {
	children, trailing, err := s.build(t.Body, path)
	if err != nil {
		return nil, nil, err
	}
	nt := ir.NewTable(t.IsSuper, t.IsAoTElement)
	nt.Trivia = s.normalizeTrivia(t, s.comments.Inline).Trivia
	if !t.IsSuper {
		nt.Trivia.Indent = "\n"
	}
	item := &SortItem{Key: key, Path: path, Value: nt, Children: children}
	if !t.IsSuper {
		item.Comments = pending
		return trailing, item, nil
	}
	// a super table has no header line to carry comments
	target, err := superTarget(item)
	if err != nil {
		return nil, nil, err
	}
	target.Comments = slices.Concat(pending, target.Comments)
	return trailing, item, nil
}

// superTarget finds the first concrete item below a super table.
func superTarget(item *SortItem) (*SortItem, error) {
	cur := item
	for {
		if len(cur.Children) == 0 {
			return nil, &MalformedError{Path: item.Path, Reason: "super table without a concrete descendant"}
		}
		next := cur.Children[0]
		switch {
		case next.IsAoT():
			if len(next.Children) == 0 {
				return nil, &MalformedError{Path: next.Path, Reason: "empty array of tables"}
			}
			return next.Children[0], nil
		case next.IsSuper():
			cur = next
		default:
			return next, nil
		}
	}
}

// buildAoT makes one child per element table. Comments trailing an element
// belong to the next one.
func (s *Sorter) buildAoT(pending []*ir.Node, key *ir.Key, path Path, a *ir.Node) ([]*ir.Node, *SortItem, error) {
	item := &SortItem{Key: key, Path: path, Value: ir.NewAoT()}
	for _, t := range a.Tables {
		if t.Type != ir.TableType {
			return nil, nil, &MalformedError{Path: path, Reason: fmt.Sprintf("%s in array of tables", t.Type)}
		}
		trailing, el, err := s.buildTable(pending, key, path, t)
		if err != nil {
			return nil, nil, err
		}
		pending = trailing
		item.Children = append(item.Children, el)
	}
	if len(item.Children) == 0 {
		return nil, nil, &MalformedError{Path: path, Reason: "empty array of tables"}
	}
	return pending, item, nil
}

// coalesce merges items sharing a key: children and comments are
// concatenated and a super table gives way to the explicit one.
func coalesce(items []*SortItem) []*SortItem {
	res := make([]*SortItem, 0, len(items))
	byName := make(map[string]*SortItem, len(items))
	for _, it := range items {
		name := it.Key.Name()
		ex, ok := byName[name]
		if !ok {
			byName[name] = it
			res = append(res, it)
			continue
		}
		ex.Children = append(ex.Children, it.Children...)
		ex.Comments = append(ex.Comments, it.Comments...)
		if ex.IsSuper() {
			ex.Value = it.Value
		}
	}
	return res
}
