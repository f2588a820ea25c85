// Package parse parses TOML text into ir documents.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
// Parse first validates the document with go-toml, so any error it returns
// for invalid TOML is a *[Error] carrying the line and column. The returned
// tree keeps comments, blank lines and the original spelling of keys and
// values; see package ir for how they are placed.
//
// # Related Packages
//
//   - github.com/signadot/tomlsort/ir - IR representation
//   - github.com/signadot/tomlsort/encode - Encode IR to text
//   - github.com/signadot/tomlsort/token - Scanning
package parse
