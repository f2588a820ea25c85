// Package encode renders ir trees as TOML text.
//
// Encoding writes what the tree holds: every node's trivia, the raw text
// of keys and scalars and, for tables, a header built from the keys on the
// path down to it. Super tables have no header. Inline tables are always
// written on one line as { k = v, ... }.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(doc, &buf); err != nil {
//	    return err
//	}
//
//	// with terminal colors
//	encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/tomlsort/ir - IR representation
//   - github.com/signadot/tomlsort/parse - Parse text into IR
package encode
