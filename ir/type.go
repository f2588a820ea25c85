package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	ArrayType
	InlineTableType
	TableType
	AoTType
	CommentType
	WhitespaceType
	DocumentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:      "Scalar",
		ArrayType:       "Array",
		InlineTableType: "InlineTable",
		TableType:       "Table",
		AoTType:         "AoT",
		CommentType:     "Comment",
		WhitespaceType:  "Whitespace",
		DocumentType:    "Document",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar":      ScalarType,
		"Array":       ArrayType,
		"InlineTable": InlineTableType,
		"Table":       TableType,
		"AoT":         AoTType,
		"Comment":     CommentType,
		"Whitespace":  WhitespaceType,
		"Document":    DocumentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		ArrayType,
		InlineTableType,
		TableType,
		AoTType,
		CommentType,
		WhitespaceType,
		DocumentType,
	}
}

// IsTrivia reports whether nodes of type t carry no value.
func (t Type) IsTrivia() bool {
	switch t {
	case CommentType, WhitespaceType:
		return true
	default:
		return false
	}
}

// IsContainer reports whether t renders as a [header] section rather than
// a key = value line.
func (t Type) IsContainer() bool {
	switch t {
	case TableType, AoTType:
		return true
	default:
		return false
	}
}

type ScalarKind int

const (
	StringKind ScalarKind = iota
	IntegerKind
	FloatKind
	BoolKind
	DatetimeKind
)

func (k ScalarKind) String() string {
	switch k {
	case StringKind:
		return "String"
	case IntegerKind:
		return "Integer"
	case FloatKind:
		return "Float"
	case BoolKind:
		return "Bool"
	case DatetimeKind:
		return "Datetime"
	}
	return "<unknown kind>"
}
