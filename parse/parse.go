package parse

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/tomlsort/ir"
	"github.com/signadot/tomlsort/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{validate: true}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{s: token.NewScanner(d), doc: ir.NewDocument(), d: d}
	for !p.s.EOF() {
		if err := p.line(); err != nil {
			return nil, p.wrap(err)
		}
	}
	if pOpts.validate {
		if err := Validate(d); err != nil {
			return nil, err
		}
	}
	return p.doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	s   *token.Scanner
	d   []byte
	doc *ir.Node

	// open is the chain of tables from the last header down: each
	// frame's path is a proper prefix of the next one's.
	open []*frame
}

type frame struct {
	path []string
	node *ir.Node
	aot  *ir.Node
}

func (p *parser) wrap(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return &Error{Err: err}
	}
	line, col := te.Pos.LineCol()
	return &Error{
		Err:     te.Err,
		Line:    line + 1,
		Col:     col + 1,
		Context: sourceLine(p.d, line+1),
	}
}

// body returns the container receiving key/values, comments and blank
// lines at this point of the document.
func (p *parser) body() *ir.Node {
	if len(p.open) == 0 {
		return p.doc
	}
	return p.open[len(p.open)-1].node
}

func (p *parser) line() error {
	indent := p.s.Spaces()
	switch {
	case p.s.AtLineEnd():
		if p.s.Newline() {
			p.body().AddTrivia(ir.Whitespace(indent + "\n"))
		} else if indent != "" {
			p.body().AddTrivia(ir.Whitespace(indent))
		}
		return nil
	case p.s.Peek() == '#':
		tok, err := p.s.Comment()
		if err != nil {
			return err
		}
		c := ir.Comment(string(tok.Bytes))
		c.Trivia.Indent = indent
		if p.s.Newline() {
			c.Trivia.Trail = "\n"
		}
		p.body().AddTrivia(c)
		return nil
	case p.s.Peek() == '[':
		return p.header(indent)
	default:
		return p.keyValue(indent)
	}
}

// endLine reads an optional comment and the line ending after n.
func (p *parser) endLine(n *ir.Node) error {
	ws := p.s.Spaces()
	if p.s.Peek() == '#' {
		tok, err := p.s.Comment()
		if err != nil {
			return err
		}
		n.Trivia.CommentWS = ws
		n.Trivia.Comment = string(tok.Bytes)
		ws = ""
	}
	if !p.s.AtLineEnd() {
		return token.UnexpectedErr(fmt.Sprintf("%q after value", p.s.Peek()), p.s.Pos())
	}
	if p.s.Newline() {
		ws += "\n"
	}
	n.Trivia.Trail = ws
	return nil
}

// keyParts reads a dotted key and returns it with the whitespace that
// follows it.
func (p *parser) keyParts() ([]ir.KeyPart, string, error) {
	var parts []ir.KeyPart
	for {
		p.s.Spaces()
		tok, err := p.s.KeyPart()
		if err != nil {
			return nil, "", err
		}
		parts = append(parts, ir.KeyPart{Raw: string(tok.Bytes), Name: tok.Name()})
		ws := p.s.Spaces()
		if p.s.Peek() != '.' {
			return parts, ws, nil
		}
		p.s.Advance(1)
	}
}

func (p *parser) keyValue(indent string) error {
	parts, ws, err := p.keyParts()
	if err != nil {
		return err
	}
	if p.s.Peek() != '=' {
		return token.ExpectedErr("'='", p.s.Pos())
	}
	p.s.Advance(1)
	sep := ws + "=" + p.s.Spaces()
	v, err := p.value()
	if err != nil {
		return err
	}
	v.Trivia.Indent = indent
	if err := p.endLine(v); err != nil {
		return err
	}
	p.body().Add(&ir.Key{Parts: parts, Sep: sep}, v)
	return nil
}

func (p *parser) header(indent string) error {
	isAoT := p.s.HasPrefix("[[")
	closing := "]"
	if isAoT {
		closing = "]]"
	}
	p.s.Advance(len(closing))
	parts, _, err := p.keyParts()
	if err != nil {
		return err
	}
	if !p.s.HasPrefix(closing) {
		return token.ExpectedErr(fmt.Sprintf("%q", closing), p.s.Pos())
	}
	p.s.Advance(len(closing))
	t := ir.NewTable(false, isAoT)
	t.Trivia.Indent = indent
	if err := p.endLine(t); err != nil {
		return err
	}
	p.openTable(parts, t, isAoT)
	return nil
}

// openTable places t, whose header path is parts, in the document. The
// table lands under the deepest open table whose path prefixes it; missing
// intermediate tables are created as super tables. A reopened path gets
// a second entry in its parent body.
func (p *parser) openTable(parts []ir.KeyPart, t *ir.Node, isAoT bool) {
	names := make([]string, len(parts))
	for i := range parts {
		names[i] = parts[i].Name
	}
	depth := 0
	container := p.doc
	for i := len(p.open) - 1; i >= 0; i-- {
		f := p.open[i]
		if isAoT && f.aot != nil && slices.Equal(f.path, names) {
			f.aot.Append(t)
			f.node = t
			p.open = p.open[:i+1]
			return
		}
		if len(f.path) < len(names) && slices.Equal(f.path, names[:len(f.path)]) {
			depth = i + 1
			container = f.node
			break
		}
	}
	p.open = p.open[:depth]
	base := 0
	if depth > 0 {
		base = len(p.open[depth-1].path)
	}
	last := len(parts) - 1
	for j := base; j < last; j++ {
		super := ir.NewTable(true, false)
		container.Add(partKey(parts[j]), super)
		p.open = append(p.open, &frame{path: names[:j+1], node: super})
		container = super
	}
	f := &frame{path: names, node: t}
	if isAoT {
		f.aot = ir.NewAoT()
		f.aot.Append(t)
		container.Add(partKey(parts[last]), f.aot)
	} else {
		container.Add(partKey(parts[last]), t)
	}
	p.open = append(p.open, f)
}

func partKey(part ir.KeyPart) *ir.Key {
	return &ir.Key{Parts: []ir.KeyPart{part}, Sep: " = "}
}

func (p *parser) value() (*ir.Node, error) {
	switch p.s.Peek() {
	case '"', '\'':
		tok, err := p.s.String()
		if err != nil {
			return nil, err
		}
		return ir.Scalar(ir.StringKind, string(tok.Bytes)), nil
	case '[':
		return p.array()
	case '{':
		return p.inlineTable()
	}
	tok, err := p.s.Scalar()
	if err != nil {
		return nil, err
	}
	var kind ir.ScalarKind
	switch tok.Type {
	case token.TBool:
		kind = ir.BoolKind
	case token.TInteger:
		kind = ir.IntegerKind
	case token.TFloat:
		kind = ir.FloatKind
	case token.TDatetime:
		kind = ir.DatetimeKind
	default:
		return nil, fmt.Errorf("%w: scalar token %s", errInternal, tok.Type)
	}
	return ir.Scalar(kind, string(tok.Bytes)), nil
}

func (p *parser) array() (*ir.Node, error) {
	pos := p.s.Pos()
	p.s.Advance(1)
	arr := ir.NewArray()
	ws := &strings.Builder{}
	var last *ir.ArrayItem
	// sameLine is set while no line ending has been read since last's value.
	sameLine := false
	for {
		ws.WriteString(p.s.Spaces())
		switch {
		case p.s.EOF():
			return nil, token.NewTokenizeErr(fmt.Errorf("%w array", token.ErrUnterminated), pos)
		case p.s.Newline():
			ws.WriteByte('\n')
			sameLine = false
		case p.s.Peek() == '#':
			tok, err := p.s.Comment()
			if err != nil {
				return nil, err
			}
			c := ir.Comment(string(tok.Bytes))
			if last != nil && sameLine && last.Comment == nil {
				c.Trivia.CommentWS = ws.String()
				last.Comment = c
			} else {
				arr.Items = append(arr.Items, &ir.ArrayItem{Indent: ws.String(), Comment: c})
			}
			ws.Reset()
		case p.s.Peek() == ']':
			p.s.Advance(1)
			arr.Closing = ws.String()
			return arr, nil
		case p.s.Peek() == ',':
			if last == nil || last.Comma != "" {
				return nil, token.UnexpectedErr("','", p.s.Pos())
			}
			last.Comma = ws.String() + ","
			ws.Reset()
			p.s.Advance(1)
		default:
			if last != nil && last.Comma == "" {
				return nil, token.ExpectedErr("','", p.s.Pos())
			}
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			last = &ir.ArrayItem{Indent: ws.String(), Value: v}
			ws.Reset()
			arr.Items = append(arr.Items, last)
			sameLine = true
		}
	}
}

func (p *parser) inlineTable() (*ir.Node, error) {
	p.s.Advance(1)
	t := ir.NewInlineTable()
	p.s.Spaces()
	if p.s.Peek() == '}' {
		p.s.Advance(1)
		return t, nil
	}
	for {
		parts, ws, err := p.keyParts()
		if err != nil {
			return nil, err
		}
		if p.s.Peek() != '=' {
			return nil, token.ExpectedErr("'='", p.s.Pos())
		}
		p.s.Advance(1)
		sep := ws + "=" + p.s.Spaces()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		t.Add(&ir.Key{Parts: parts, Sep: sep}, v)
		p.s.Spaces()
		switch {
		case p.s.Peek() == ',':
			p.s.Advance(1)
		case p.s.Peek() == '}':
			p.s.Advance(1)
			return t, nil
		case p.s.AtLineEnd():
			return nil, token.NewTokenizeErr(fmt.Errorf("%w in inline table", token.ErrNewline), p.s.Pos())
		default:
			return nil, token.ExpectedErr("',' or '}'", p.s.Pos())
		}
	}
}
