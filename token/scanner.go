package token

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Scanner holds a read position over a document.
type Scanner struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, doc: NewPosDoc(d)}
}

func (s *Scanner) EOF() bool {
	return s.i >= len(s.d)
}

// Peek returns the current byte, or 0 at the end of the document.
func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.d[s.i]
}

func (s *Scanner) HasPrefix(p string) bool {
	return bytes.HasPrefix(s.d[s.i:], []byte(p))
}

func (s *Scanner) Advance(n int) {
	s.i = min(s.i+n, len(s.d))
}

func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.i)
}

// Spaces consumes spaces and tabs and returns them.
func (s *Scanner) Spaces() string {
	start := s.i
	for !s.EOF() {
		c := s.d[s.i]
		if c != ' ' && c != '\t' {
			break
		}
		s.i++
	}
	return string(s.d[start:s.i])
}

// Newline consumes a single line feed if one is next.
func (s *Scanner) Newline() bool {
	if s.Peek() == '\n' {
		s.i++
		return true
	}
	if s.HasPrefix("\r\n") {
		s.i += 2
		return true
	}
	return false
}

// AtLineEnd reports whether nothing but a line ending (or the end of the
// document) follows.
func (s *Scanner) AtLineEnd() bool {
	return s.EOF() || s.Peek() == '\n' || s.HasPrefix("\r\n")
}

// Comment scans a comment starting at '#' up to, but not including, the
// line ending.
func (s *Scanner) Comment() (Token, error) {
	pos := s.Pos()
	if s.Peek() != '#' {
		return Token{}, ExpectedErr("'#'", pos)
	}
	start := s.i
	for !s.AtLineEnd() {
		r, n := utf8.DecodeRune(s.d[s.i:])
		if r == utf8.RuneError && n == 1 {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w in comment", ErrControl), s.Pos())
		}
		if r != '\t' && (r < 0x20 || r == 0x7f) {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w U+%04X in comment", ErrControl, r), s.Pos())
		}
		s.i += n
	}
	return Token{Type: TComment, Pos: pos, Bytes: s.d[start:s.i]}, nil
}

// KeyPart scans one segment of a (possibly dotted) key.
func (s *Scanner) KeyPart() (Token, error) {
	pos := s.Pos()
	switch s.Peek() {
	case '"', '\'':
		if s.HasPrefix(`"""`) || s.HasPrefix("'''") {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w: multi-line string as key", ErrBadKey), pos)
		}
		return s.String()
	}
	start := s.i
	for !s.EOF() && isBareKeyChar(s.d[s.i]) {
		s.i++
	}
	if start == s.i {
		if s.EOF() {
			return Token{}, ExpectedErr("key", pos)
		}
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: unexpected %q", ErrBadKey, s.d[s.i]), pos)
	}
	return Token{Type: TBareKey, Pos: pos, Bytes: s.d[start:s.i]}, nil
}

func isBareKeyChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

// String scans a basic, literal or multi-line string including its quotes.
func (s *Scanner) String() (Token, error) {
	pos := s.Pos()
	start := s.i
	switch {
	case s.HasPrefix(`"""`):
		if err := s.multiline('"', true); err != nil {
			return Token{}, err
		}
		return Token{Type: TMString, Pos: pos, Bytes: s.d[start:s.i]}, nil
	case s.HasPrefix("'''"):
		if err := s.multiline('\'', false); err != nil {
			return Token{}, err
		}
		return Token{Type: TMLit, Pos: pos, Bytes: s.d[start:s.i]}, nil
	case s.Peek() == '"':
		if err := s.single('"', true); err != nil {
			return Token{}, err
		}
		return Token{Type: TString, Pos: pos, Bytes: s.d[start:s.i]}, nil
	case s.Peek() == '\'':
		if err := s.single('\'', false); err != nil {
			return Token{}, err
		}
		return Token{Type: TLiteral, Pos: pos, Bytes: s.d[start:s.i]}, nil
	}
	return Token{}, ExpectedErr("string", pos)
}

func (s *Scanner) single(q byte, escapes bool) error {
	pos := s.Pos()
	s.i++
	for !s.EOF() {
		c := s.d[s.i]
		switch {
		case c == q:
			s.i++
			return nil
		case c == '\n':
			return NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), pos)
		case c == '\\' && escapes:
			if s.i+1 >= len(s.d) || s.d[s.i+1] == '\n' {
				return NewTokenizeErr(ErrBadEscape, s.Pos())
			}
			s.i += 2
		default:
			s.i++
		}
	}
	return NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), pos)
}

func (s *Scanner) multiline(q byte, escapes bool) error {
	pos := s.Pos()
	delim := []byte{q, q, q}
	s.i += 3
	for !s.EOF() {
		c := s.d[s.i]
		if c == '\\' && escapes {
			s.i += 2
			continue
		}
		if bytes.HasPrefix(s.d[s.i:], delim) {
			s.i += 3
			// up to two quotes may directly precede the closing delimiter
			for n := 0; n < 2 && s.Peek() == q; n++ {
				s.i++
			}
			return nil
		}
		s.i++
	}
	s.i = len(s.d)
	return NewTokenizeErr(fmt.Errorf("%w multi-line string", ErrUnterminated), pos)
}

// Scalar scans a bare value: a boolean, number or date/time.
func (s *Scanner) Scalar() (Token, error) {
	pos := s.Pos()
	start := s.i
	s.scalarRun()
	// a date may be separated from its time by a single space
	if s.i-start == 10 && isDate(s.d[start:s.i]) &&
		s.i+3 < len(s.d) && s.d[s.i] == ' ' &&
		isDigit(s.d[s.i+1]) && isDigit(s.d[s.i+2]) && s.d[s.i+3] == ':' {
		s.i++
		s.scalarRun()
	}
	if start == s.i {
		if s.AtLineEnd() {
			return Token{}, NewTokenizeErr(ErrMissingValue, pos)
		}
		return Token{}, UnexpectedErr(fmt.Sprintf("%q", s.d[s.i]), pos)
	}
	d := s.d[start:s.i]
	return Token{Type: scalarType(d), Pos: pos, Bytes: d}, nil
}

func (s *Scanner) scalarRun() {
	for !s.EOF() && isScalarChar(s.d[s.i]) {
		s.i++
	}
}

func isScalarChar(c byte) bool {
	switch c {
	case '+', '-', '.', ':', '_':
		return true
	}
	return isBareKeyChar(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDate(d []byte) bool {
	if len(d) < 10 {
		return false
	}
	for i, c := range d[:10] {
		switch i {
		case 4, 7:
			if c != '-' {
				return false
			}
		default:
			if !isDigit(c) {
				return false
			}
		}
	}
	return true
}

func scalarType(d []byte) TokenType {
	v := string(d)
	switch v {
	case "true", "false":
		return TBool
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return TFloat
	}
	if isDate(d) || bytes.IndexByte(d, ':') >= 0 {
		return TDatetime
	}
	if len(d) > 2 && d[0] == '0' && (d[1] == 'x' || d[1] == 'o' || d[1] == 'b') {
		return TInteger
	}
	if bytes.ContainsAny(d, ".eE") {
		return TFloat
	}
	return TInteger
}
