package tomlsort

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/signadot/tomlsort/debug"
)

// SortOverrideConfiguration holds the fields an override replaces. A nil
// field inherits the global value.
type SortOverrideConfiguration struct {
	Tables       *bool
	TableKeys    *bool
	InlineTables *bool
	InlineArrays *bool
	IgnoreCase   *bool
	First        []string
}

// Override applies Config to the paths matching Pattern, either exactly or
// as a glob over the dotted path string.
type Override struct {
	Pattern string
	Config  SortOverrideConfiguration
}

// Overrides are consulted in order: an exact match wins, otherwise the
// first matching pattern does.
type Overrides []Override

// NewOverrides checks that every pattern compiles and is declared once.
func NewOverrides(list ...Override) (Overrides, error) {
	seen := make(map[string]bool, len(list))
	for i := range list {
		o := &list[i]
		if o.Pattern == "" {
			return nil, &OverrideError{Reason: "empty pattern"}
		}
		if !doublestar.ValidatePattern(o.Pattern) {
			return nil, &OverrideError{Pattern: o.Pattern, Reason: "bad glob pattern"}
		}
		if seen[o.Pattern] {
			return nil, &OverrideError{Pattern: o.Pattern, Reason: "declared more than once"}
		}
		seen[o.Pattern] = true
	}
	return Overrides(list), nil
}

// Find returns the override configuration for path, or nil.
func (ovs Overrides) Find(path string) *SortOverrideConfiguration {
	for i := range ovs {
		if ovs[i].Pattern == path {
			return &ovs[i].Config
		}
	}
	for i := range ovs {
		ok, err := doublestar.Match(ovs[i].Pattern, path)
		if err != nil {
			continue
		}
		if ok {
			return &ovs[i].Config
		}
	}
	return nil
}

var overrideFields = map[string]string{
	"sort_tables":        "sort_tables",
	"tables":             "sort_tables",
	"sort_table_keys":    "sort_table_keys",
	"table_keys":         "sort_table_keys",
	"sort_inline_tables": "sort_inline_tables",
	"inline_tables":      "sort_inline_tables",
	"sort_inline_arrays": "sort_inline_arrays",
	"inline_arrays":      "sort_inline_arrays",
	"ignore_case":        "ignore_case",
	"first":              "first",
}

// ParseOverride builds an override from decoded settings. Keys of fields
// are the settings file names; unknown names are rejected.
func ParseOverride(pattern string, fields map[string]any) (Override, error) {
	res := Override{Pattern: pattern}
	c := &res.Config
	for name, v := range fields {
		canon, ok := overrideFields[name]
		if !ok {
			return res, &OverrideError{Pattern: pattern, Field: name, Reason: "unknown field"}
		}
		if canon == "first" {
			first, err := stringList(v)
			if err != nil {
				return res, &OverrideError{Pattern: pattern, Field: name, Reason: err.Error()}
			}
			c.First = first
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return res, &OverrideError{Pattern: pattern, Field: name, Reason: fmt.Sprintf("expected a boolean, got %T", v)}
		}
		switch canon {
		case "sort_tables":
			c.Tables = &b
		case "sort_table_keys":
			c.TableKeys = &b
		case "sort_inline_tables":
			c.InlineTables = &b
		case "sort_inline_arrays":
			c.InlineArrays = &b
		case "ignore_case":
			c.IgnoreCase = &b
		}
	}
	return res, nil
}

func stringList(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case []any:
		res := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expected a list of strings, got element %T", e)
			}
			res = append(res, s)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}

// resolve returns the effective configuration at path.
func (s *Sorter) resolve(path Path) SortConfiguration {
	if path == nil {
		return s.sort
	}
	ps := path.String()
	o := s.overrides.Find(ps)
	if debug.Overrides() && o != nil {
		debug.Logf("override for %q: %+v\n", ps, *o)
	}
	return s.sort.Merge(o)
}
