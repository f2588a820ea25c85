package tomlsort

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/tomlsort/encode"
	"github.com/signadot/tomlsort/ir"
	"github.com/signadot/tomlsort/parse"
)

// Sorter sorts documents under a fixed configuration. It holds no state
// between documents.
type Sorter struct {
	sort      SortConfiguration
	comments  CommentConfiguration
	format    FormattingConfiguration
	overrides Overrides
}

func New(opts ...Option) (*Sorter, error) {
	s := &Sorter{
		sort:     DefaultSortConfiguration(),
		comments: DefaultCommentConfiguration(),
		format:   DefaultFormattingConfiguration(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.format.validate(); err != nil {
		return nil, err
	}
	if _, err := NewOverrides(s.overrides...); err != nil {
		return nil, err
	}
	return s, nil
}

// Sorted returns text sorted and formatted. The result ends in a single
// newline and sorting it again yields the same text.
func (s *Sorter) Sorted(text string) (string, error) {
	// positions in errors refer to text, not its cleaned form
	if _, err := parse.ParseString(text); err != nil {
		return "", err
	}
	doc, err := parse.ParseString(CleanText(text), parse.ParseValidate(false))
	if err != nil {
		return "", err
	}
	res, err := s.SortDocument(doc)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(res, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return strings.TrimSpace(CleanText(buf.String())) + "\n", nil
}

// SortDocument returns a sorted document built from the parts of doc; doc
// must not be used afterwards.
func (s *Sorter) SortDocument(doc *ir.Node) (*ir.Node, error) {
	if doc == nil || doc.Type != ir.DocumentType {
		return nil, &MalformedError{Reason: "not a document"}
	}
	header, body := s.stripHeader(doc.Body)
	items, footer, err := s.build(body, nil)
	if err != nil {
		return nil, err
	}
	return s.assemble(items, header, footer), nil
}

// Sorted sorts text with a Sorter built from opts.
func Sorted(text string, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	return s.Sorted(text)
}
