package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// Error reports invalid TOML. Line and Col are 1-based; Context is the
// offending source line.
type Error struct {
	Err     error
	Line    int
	Col     int
	Context string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s at line %d, col %d: %v", ErrParse, e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}
