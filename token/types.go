package token

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TBareKey TokenType = iota
	TString
	TMString
	TLiteral
	TMLit
	TInteger
	TFloat
	TBool
	TDatetime
	TComment
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TBareKey:  "TBareKey",
		TString:   "TString",
		TMString:  "TMString",
		TLiteral:  "TLiteral",
		TMLit:     "TMLit",
		TInteger:  "TInteger",
		TFloat:    "TFloat",
		TBool:     "TBool",
		TDatetime: "TDatetime",
		TComment:  "TComment",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Name returns the key name a token denotes: quotes are removed and, for
// basic strings, escapes are resolved.
func (t *Token) Name() string {
	raw := string(t.Bytes)
	switch t.Type {
	case TString:
		return unescapeBasic(raw[1 : len(raw)-1])
	case TLiteral:
		return raw[1 : len(raw)-1]
	default:
		return raw
	}
}

func unescapeBasic(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	// the TOML 1.0 escapes are a subset of Go's; anything Go rejects is
	// kept verbatim.
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}
