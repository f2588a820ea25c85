package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tomlsort/ir"
)

type EncState struct {
	path  []string
	Color func(*ir.Node, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type {
	case ir.DocumentType:
		return encodeBody(node.Body, es.path, w, es)
	case ir.TableType:
		if len(es.path) == 0 {
			return fmt.Errorf("%w: table without a header path", ErrEncoding)
		}
		return encodeTable(node, es.path, w, es)
	case ir.AoTType:
		if len(es.path) == 0 {
			return fmt.Errorf("%w: array of tables without a header path", ErrEncoding)
		}
		return encodeAoT(node, es.path, w, es)
	case ir.CommentType, ir.WhitespaceType:
		return encodeTrivia(node, w, es)
	default:
		return encodeValue(node, w, es)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, n *ir.Node, attr ColorAttr, v string) string {
	if es.Color == nil || v == "" {
		return v
	}
	return es.Color(n, attr, v)
}

func encodeBody(body []*ir.Entry, path []string, w io.Writer, es *EncState) error {
	for _, e := range body {
		if e.Value == nil {
			return fmt.Errorf("%w: entry without value in %q", ErrEncoding, strings.Join(path, "."))
		}
		if e.Key == nil {
			if err := encodeTrivia(e.Value, w, es); err != nil {
				return err
			}
			continue
		}
		sub := append(path[:len(path):len(path)], rawParts(e.Key)...)
		switch e.Value.Type {
		case ir.TableType:
			if err := encodeTable(e.Value, sub, w, es); err != nil {
				return err
			}
		case ir.AoTType:
			if err := encodeAoT(e.Value, sub, w, es); err != nil {
				return err
			}
		default:
			if err := encodeKeyValue(e.Key, e.Value, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func rawParts(k *ir.Key) []string {
	res := make([]string, len(k.Parts))
	for i := range k.Parts {
		res[i] = k.Parts[i].Raw
	}
	return res
}

func encodeTrivia(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.WhitespaceType:
		return writeString(w, n.Text)
	case ir.CommentType:
		return writeString(w, n.Trivia.Indent+applyColor(es, n, ValueColor, n.Trivia.Comment)+n.Trivia.Trail)
	default:
		return fmt.Errorf("%w: %s in place of trivia", ErrEncoding, n.Type)
	}
}

// writeLineEnd writes the same line comment and line ending of n.
func writeLineEnd(n *ir.Node, w io.Writer, es *EncState) error {
	s := ""
	if n.Trivia.Comment != "" {
		s = n.Trivia.CommentWS + applyColor(es, n, CommentColor, n.Trivia.Comment)
	}
	return writeString(w, s+n.Trivia.Trail)
}

func encodeTable(t *ir.Node, path []string, w io.Writer, es *EncState) error {
	if !t.IsSuper {
		lb, rb := "[", "]"
		if t.IsAoTElement {
			lb, rb = "[[", "]]"
		}
		typ := ir.TableType
		if t.IsAoTElement {
			typ = ir.AoTType
		}
		header := &ir.Node{Type: typ}
		hdr := applyColor(es, header, HeaderColor, lb+strings.Join(path, ".")+rb)
		if err := writeString(w, t.Trivia.Indent+hdr); err != nil {
			return err
		}
		if err := writeLineEnd(t, w, es); err != nil {
			return err
		}
	}
	return encodeBody(t.Body, path, w, es)
}

func encodeAoT(a *ir.Node, path []string, w io.Writer, es *EncState) error {
	for _, t := range a.Tables {
		if t.Type != ir.TableType {
			return fmt.Errorf("%w: %s in array of tables %q", ErrEncoding, t.Type, strings.Join(path, "."))
		}
		if err := encodeTable(t, path, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeKeyValue(k *ir.Key, v *ir.Node, w io.Writer, es *EncState) error {
	s := v.Trivia.Indent + applyColor(es, v, KeyColor, k.String()) + applyColor(es, v, SepColor, k.Sep)
	if err := writeString(w, s); err != nil {
		return err
	}
	if err := encodeValue(v, w, es); err != nil {
		return err
	}
	return writeLineEnd(v, w, es)
}

func encodeValue(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.ScalarType:
		return writeString(w, applyColor(es, n, ValueColor, n.Raw))
	case ir.ArrayType:
		return encodeArray(n, w, es)
	case ir.InlineTableType:
		return encodeInlineTable(n, w, es)
	default:
		return fmt.Errorf("%w: %s is not a value", ErrEncoding, n.Type)
	}
}

func encodeArray(n *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, n, SepColor, "[")); err != nil {
		return err
	}
	for _, item := range n.Items {
		if err := writeString(w, item.Indent); err != nil {
			return err
		}
		if item.Value != nil {
			if err := encodeValue(item.Value, w, es); err != nil {
				return err
			}
			if err := writeString(w, applyColor(es, n, SepColor, item.Comma)); err != nil {
				return err
			}
		}
		if item.Comment != nil {
			c := item.Comment
			s := c.Trivia.CommentWS + applyColor(es, c, ValueColor, c.Trivia.Comment)
			if err := writeString(w, s); err != nil {
				return err
			}
		}
	}
	return writeString(w, n.Closing+applyColor(es, n, SepColor, "]"))
}

func encodeInlineTable(n *ir.Node, w io.Writer, es *EncState) error {
	if len(n.Body) == 0 {
		return writeString(w, applyColor(es, n, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, n, SepColor, "{")+" "); err != nil {
		return err
	}
	first := true
	for _, e := range n.Body {
		if e.Key == nil {
			continue
		}
		if !first {
			if err := writeString(w, applyColor(es, n, SepColor, ",")+" "); err != nil {
				return err
			}
		}
		first = false
		s := applyColor(es, n, KeyColor, e.Key.String()) + applyColor(es, e.Value, SepColor, e.Key.Sep)
		if err := writeString(w, s); err != nil {
			return err
		}
		if err := encodeValue(e.Value, w, es); err != nil {
			return err
		}
	}
	return writeString(w, " "+applyColor(es, n, SepColor, "}"))
}
