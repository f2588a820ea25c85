// Package ir provides the in-memory representation of a TOML document.
//
// # Overview
//
// A document is a tree of [Node]s. A Node is a tagged
// union: the Type field says which of the other fields are meaningful.
//
//   - ScalarType: strings, numbers, booleans and date/times, kept as the raw
//     source text in Raw (Kind records which one it is)
//   - ArrayType: inline arrays; Items keeps per element indentation, comma,
//     same line comment, and stand alone comment lines
//   - InlineTableType: { k = v, ... }; Body holds the entries
//   - TableType: [header] sections; Body holds entries in document order
//   - AoTType: [[header]] arrays of tables; Tables holds the element tables
//   - CommentType: a comment line, text in Trivia.Comment
//   - WhitespaceType: a blank line, text in Text
//   - DocumentType: the root; Body holds the top level entries
//
// # Trivia
//
// Every valued node carries [Trivia]: the whitespace before it on its line
// (Indent), the spacing and text of a comment that follows it on the same
// line (CommentWS, Comment) and the line ending (Trail). For a key/value entry
// the trivia lives on the value; for a table it describes the header line.
//
// # Bodies
//
// Table and document bodies are ordered lists of [Entry]. Comment and
// whitespace entries have a nil Key. The parse package places a comment
// line in the body of the table that is open when it is read, so a comment
// written just above a [header] ends up at the tail of the previous table.
// Re-homing those comments is the job of the consumer.
//
// A header such as [a.b.c] read while no table a is open creates "super
// tables" for a and a.b: tables with IsSuper set which have no header line of
// their own. Reopening a table elsewhere in the document yields a second
// entry with the same key in the same body.
//
// # Related Packages
//
//   - github.com/signadot/tomlsort/parse - parse text into an ir document
//   - github.com/signadot/tomlsort/encode - render an ir tree as text
package ir
