// Package token provides lexical scanning support for TOML documents.
//
// [Scanner] walks a document and hands out [Token]s for the lexical pieces
// the parser needs: keys, strings, bare scalars and comments. Every token
// carries a [Pos] which renders as a line/column location for errors.
//
// The scanner is deliberately permissive about the contents of scalars:
// semantic validation of numbers, dates and escapes is left to the parse
// package, which runs a strict decoder over the whole document.
package token
