package tomlsort

import "fmt"

type SortConfiguration struct {
	Tables       bool
	TableKeys    bool
	InlineTables bool
	InlineArrays bool
	IgnoreCase   bool
	// First lists key names which go before all others, in this order.
	First []string
}

func DefaultSortConfiguration() SortConfiguration {
	return SortConfiguration{Tables: true}
}

type CommentConfiguration struct {
	Header bool
	Footer bool
	Inline bool
	Block  bool
}

func DefaultCommentConfiguration() CommentConfiguration {
	return CommentConfiguration{Header: true, Footer: true, Inline: true, Block: true}
}

type FormattingConfiguration struct {
	SpacesBeforeInlineComment int
	SpacesIndentInlineArray   int
	TrailingCommaInlineArray  bool
}

func DefaultFormattingConfiguration() FormattingConfiguration {
	return FormattingConfiguration{
		SpacesBeforeInlineComment: 1,
		SpacesIndentInlineArray:   2,
	}
}

func (f FormattingConfiguration) validate() error {
	if f.SpacesBeforeInlineComment < 1 {
		return fmt.Errorf("%w: spaces before inline comment must be at least 1, got %d",
			ErrInvalidConfig, f.SpacesBeforeInlineComment)
	}
	if f.SpacesIndentInlineArray < 0 {
		return fmt.Errorf("%w: negative inline array indent %d",
			ErrInvalidConfig, f.SpacesIndentInlineArray)
	}
	return nil
}

// Merge returns c with every field o sets replaced.
func (c SortConfiguration) Merge(o *SortOverrideConfiguration) SortConfiguration {
	if o == nil {
		return c
	}
	res := c
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&res.Tables, o.Tables)
	set(&res.TableKeys, o.TableKeys)
	set(&res.InlineTables, o.InlineTables)
	set(&res.InlineArrays, o.InlineArrays)
	set(&res.IgnoreCase, o.IgnoreCase)
	if o.First != nil {
		res.First = o.First
	}
	return res
}

type Option func(*Sorter)

func WithSortConfiguration(c SortConfiguration) Option {
	return func(s *Sorter) { s.sort = c }
}

func WithCommentConfiguration(c CommentConfiguration) Option {
	return func(s *Sorter) { s.comments = c }
}

func WithFormattingConfiguration(c FormattingConfiguration) Option {
	return func(s *Sorter) { s.format = c }
}

func WithOverrides(o Overrides) Option {
	return func(s *Sorter) { s.overrides = o }
}
