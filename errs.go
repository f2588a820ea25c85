package tomlsort

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrInvalidOverride   = errors.New("invalid override")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// MalformedError reports a document tree the sorter cannot process.
type MalformedError struct {
	Path   Path
	Reason string
}

func (e *MalformedError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedDocument, e.Reason)
	}
	return fmt.Sprintf("%s at %q: %s", ErrMalformedDocument, e.Path.String(), e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// OverrideError reports an override which cannot be used. Field is empty
// when the pattern itself is at fault.
type OverrideError struct {
	Pattern string
	Field   string
	Reason  string
}

func (e *OverrideError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s %q: %s", ErrInvalidOverride, e.Pattern, e.Reason)
	}
	return fmt.Sprintf("%s %q: field %q: %s", ErrInvalidOverride, e.Pattern, e.Field, e.Reason)
}

func (e *OverrideError) Is(target error) bool {
	return target == ErrInvalidOverride
}
