// Package tomlsort sorts the keys and tables of TOML documents while
// keeping their comments.
//
// # Usage
//
//	out, err := tomlsort.Sorted(text)
//
//	// with options
//	s, err := tomlsort.New(
//	    tomlsort.WithSortConfiguration(tomlsort.SortConfiguration{Tables: true, TableKeys: true}),
//	    tomlsort.WithOverrides(overrides),
//	)
//	out, err := s.Sorted(text)
//
// # Comments
//
// The parser leaves a comment line in the body of the table that is open
// when it is read, so comments written above a header trail the previous
// table. A Sorter first rebuilds the document as a tree of [SortItem]s,
// each carrying the comments that precede it, sorts every level and then
// writes the comments back before the items they belong to.
//
// Leading comment lines form the header and comment lines after the last
// item form the footer; both stay in place. A comment followed by a blank
// line is not attached to anything and is dropped.
//
// # Overrides
//
// [Overrides] change the sort configuration below given paths. A path is
// the dot joined key names from the root, for example "tool.poetry". An
// override whose pattern equals the path applies; if there is none, the
// first override whose glob pattern matches does.
package tomlsort
