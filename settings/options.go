package settings

import (
	"slices"
	"strings"

	"github.com/signadot/tomlsort"
)

// Options returns the sorter options the settings describe.
func (s *Settings) Options() []tomlsort.Option {
	first, ovs := SplitSortFirst(s.SortFirst, s.Overrides)
	sortCfg := tomlsort.SortConfiguration{
		Tables:       !s.NoSortTables,
		TableKeys:    s.SortTableKeys || s.All,
		InlineTables: s.SortInlineTables || s.All,
		InlineArrays: s.SortInlineArrays || s.All,
		IgnoreCase:   s.IgnoreCase,
		First:        first,
	}
	commentCfg := tomlsort.CommentConfiguration{
		Header: !(s.NoHeader || s.NoHeaderComments || s.NoComments),
		Footer: !(s.NoFooterComments || s.NoComments),
		Inline: !(s.NoInlineComments || s.NoComments),
		Block:  !(s.NoBlockComments || s.NoComments),
	}
	formatCfg := tomlsort.DefaultFormattingConfiguration()
	if s.SpacesBeforeInlineComment != 0 {
		formatCfg.SpacesBeforeInlineComment = s.SpacesBeforeInlineComment
	}
	if s.SpacesIndentInlineArray != 0 {
		formatCfg.SpacesIndentInlineArray = s.SpacesIndentInlineArray
	}
	formatCfg.TrailingCommaInlineArray = s.TrailingCommaInlineArray
	return []tomlsort.Option{
		tomlsort.WithSortConfiguration(sortCfg),
		tomlsort.WithCommentConfiguration(commentCfg),
		tomlsort.WithFormattingConfiguration(formatCfg),
		tomlsort.WithOverrides(ovs),
	}
}

// SplitSortFirst splits sort_first keys into the ones pinned at the top
// level and overrides: "a.b.key" pins key in table a.b, extending the
// override for exactly a.b if there is one. ovs is not modified.
func SplitSortFirst(keys []string, ovs tomlsort.Overrides) ([]string, tomlsort.Overrides) {
	var first []string
	ovs = slices.Clone(ovs)
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		i := strings.LastIndex(k, ".")
		if i == -1 {
			first = append(first, k)
			continue
		}
		path, key := k[:i], k[i+1:]
		j := slices.IndexFunc(ovs, func(o tomlsort.Override) bool { return o.Pattern == path })
		if j == -1 {
			ovs = append(ovs, tomlsort.Override{
				Pattern: path,
				Config:  tomlsort.SortOverrideConfiguration{First: []string{key}},
			})
			continue
		}
		ovs[j].Config.First = append(slices.Clone(ovs[j].Config.First), key)
	}
	return first, ovs
}
