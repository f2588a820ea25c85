package tomlsort

import (
	"slices"
	"strings"

	"github.com/signadot/tomlsort/encode"
	"github.com/signadot/tomlsort/ir"
)

// formatValue re-renders inline arrays and inline tables at path. depth is
// the nesting level of multi-line arrays the value sits in.
func (s *Sorter) formatValue(path Path, n *ir.Node, depth int) *ir.Node {
	switch n.Type {
	case ir.ArrayType:
		return s.formatArray(path, n, depth)
	case ir.InlineTableType:
		return s.formatInlineTable(path, n, depth)
	default:
		return n
	}
}

type arrayGroup struct {
	comments []*ir.ArrayItem
	item     *ir.ArrayItem
	key      string
}

func (s *Sorter) formatArray(path Path, arr *ir.Node, depth int) *ir.Node {
	cfg := s.resolve(path)
	multiline := strings.Contains(encode.MustString(arr), "\n")
	size := s.format.SpacesIndentInlineArray
	indent, comma, valueDepth := "", ", ", depth
	if multiline {
		indent = "\n" + strings.Repeat(" ", size*(depth+1))
		comma = ","
		valueDepth = depth + 1
	}

	var (
		groups  []arrayGroup
		pending []*ir.ArrayItem
	)
	for _, it := range arr.Items {
		switch {
		case it.Value != nil:
			ni := &ir.ArrayItem{
				Indent: indent,
				Comma:  comma,
				Value:  s.formatValue(path, it.Value, valueDepth),
			}
			if it.Comment != nil && s.comments.Inline {
				c := ir.Comment(formatComment(it.Comment.Trivia.Comment))
				c.Trivia.CommentWS = strings.Repeat(" ", s.format.SpacesBeforeInlineComment)
				ni.Comment = c
			}
			key := encode.MustString(ni.Value)
			if cfg.IgnoreCase {
				key = strings.ToLower(key)
			}
			groups = append(groups, arrayGroup{comments: pending, item: ni, key: key})
			pending = nil
		case it.Comment != nil:
			// a blank line above a comment orphans the ones before it
			if strings.Count(it.Indent, "\n") > 1 {
				pending = nil
			}
			pending = append(pending, &ir.ArrayItem{
				Indent:  indent,
				Comment: ir.Comment(formatComment(it.Comment.Trivia.Comment)),
			})
		}
	}
	if cfg.InlineArrays {
		slices.SortStableFunc(groups, func(a, b arrayGroup) int {
			return strings.Compare(a.key, b.key)
		})
	}

	res := ir.NewArray()
	res.Trivia = arr.Trivia
	var last *ir.ArrayItem
	for _, g := range groups {
		if s.comments.Block {
			res.Items = append(res.Items, g.comments...)
		}
		res.Items = append(res.Items, g.item)
		last = g.item
	}
	if s.comments.Block && multiline {
		res.Items = append(res.Items, pending...)
	}
	if last != nil && !(multiline && s.format.TrailingCommaInlineArray) {
		last.Comma = ""
	}
	if multiline {
		res.Closing = "\n" + strings.Repeat(" ", size*depth)
	}
	return s.normalizeTrivia(res, s.comments.Inline)
}

func (s *Sorter) formatInlineTable(path Path, t *ir.Node, depth int) *ir.Node {
	cfg := s.resolve(path)
	var items []*SortItem
	for _, e := range t.Body {
		if e.Key == nil {
			continue
		}
		p := path.Child(e.Key)
		v := s.formatValue(p, e.Value, depth+1)
		items = append(items, &SortItem{
			Key:   formatKey(e.Key),
			Path:  p,
			Value: s.normalizeTrivia(v, false),
		})
	}
	items = sortKeys(items, cfg, cfg.InlineTables)
	res := ir.NewInlineTable()
	res.Trivia = t.Trivia
	for _, it := range items {
		res.Add(it.Key, it.Value)
	}
	return s.normalizeTrivia(res, s.comments.Inline)
}
