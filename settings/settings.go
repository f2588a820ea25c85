// Package settings loads project level toml-sort settings.
//
// Settings are looked up in a directory, in this order:
//
//   - .tomlsort.toml, with the settings at the top level
//   - pyproject.toml, under [tool.tomlsort]
//   - .tomlsort.yaml or .tomlsort.yml
//
// Keys are the long command line flag names with '_' for '-'. Per path
// sort overrides live in an "overrides" table keyed by path pattern:
//
//	[tool.tomlsort.overrides."tool.poetry"]
//	first = ["name", "version"]
//	table_keys = true
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/tomlsort"
)

var ErrSettings = errors.New("settings error")

type Settings struct {
	All              bool     `toml:"all" yaml:"all"`
	InPlace          bool     `toml:"in_place" yaml:"in_place"`
	NoHeader         bool     `toml:"no_header" yaml:"no_header"`
	NoComments       bool     `toml:"no_comments" yaml:"no_comments"`
	NoHeaderComments bool     `toml:"no_header_comments" yaml:"no_header_comments"`
	NoFooterComments bool     `toml:"no_footer_comments" yaml:"no_footer_comments"`
	NoInlineComments bool     `toml:"no_inline_comments" yaml:"no_inline_comments"`
	NoBlockComments  bool     `toml:"no_block_comments" yaml:"no_block_comments"`
	Check            bool     `toml:"check" yaml:"check"`
	IgnoreCase       bool     `toml:"ignore_case" yaml:"ignore_case"`
	NoSortTables     bool     `toml:"no_sort_tables" yaml:"no_sort_tables"`
	SortTableKeys    bool     `toml:"sort_table_keys" yaml:"sort_table_keys"`
	SortInlineTables bool     `toml:"sort_inline_tables" yaml:"sort_inline_tables"`
	SortInlineArrays bool     `toml:"sort_inline_arrays" yaml:"sort_inline_arrays"`
	SortFirst        []string `toml:"sort_first" yaml:"sort_first"`

	// zero means not set
	SpacesBeforeInlineComment int  `toml:"spaces_before_inline_comment" yaml:"spaces_before_inline_comment"`
	SpacesIndentInlineArray   int  `toml:"spaces_indent_inline_array" yaml:"spaces_indent_inline_array"`
	TrailingCommaInlineArray  bool `toml:"trailing_comma_inline_array" yaml:"trailing_comma_inline_array"`

	Overrides tomlsort.Overrides `toml:"-" yaml:"-"`

	// Path is the file the settings were read from, empty if none.
	Path string `toml:"-" yaml:"-"`
}

type loader struct {
	name string
	load func([]byte) (*Settings, error)
}

var loaders = []loader{
	{name: ".tomlsort.toml", load: loadTOML},
	{name: "pyproject.toml", load: loadPyproject},
	{name: ".tomlsort.yaml", load: loadYAML},
	{name: ".tomlsort.yml", load: loadYAML},
}

// Load reads the first settings file found in dir. Without one it returns
// empty settings.
func Load(dir string) (*Settings, error) {
	for _, l := range loaders {
		p := filepath.Join(dir, l.name)
		d, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s, err := l.load(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if s == nil {
			// pyproject.toml without a [tool.tomlsort] table
			continue
		}
		s.Path = p
		return s, nil
	}
	return &Settings{}, nil
}

// LoadFile reads settings from a file, choosing the format by its name.
func LoadFile(p string) (*Settings, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var s *Settings
	switch {
	case filepath.Base(p) == "pyproject.toml":
		s, err = loadPyproject(d)
		if err == nil && s == nil {
			s = &Settings{}
		}
	case filepath.Ext(p) == ".yaml" || filepath.Ext(p) == ".yml":
		s, err = loadYAML(d)
	default:
		s, err = loadTOML(d)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	s.Path = p
	return s, nil
}

func (s *Settings) validate() error {
	if s.SpacesBeforeInlineComment != 0 && (s.SpacesBeforeInlineComment < 1 || s.SpacesBeforeInlineComment > 4) {
		return fmt.Errorf("%w: spaces_before_inline_comment must be between 1 and 4, got %d",
			ErrSettings, s.SpacesBeforeInlineComment)
	}
	switch s.SpacesIndentInlineArray {
	case 0, 2, 4, 6, 8:
	default:
		return fmt.Errorf("%w: spaces_indent_inline_array must be one of 2, 4, 6, 8, got %d",
			ErrSettings, s.SpacesIndentInlineArray)
	}
	return nil
}

func buildOverrides(patterns []string, fields map[string]map[string]any) (tomlsort.Overrides, error) {
	list := make([]tomlsort.Override, 0, len(patterns))
	for _, p := range patterns {
		o, err := tomlsort.ParseOverride(p, fields[p])
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return tomlsort.NewOverrides(list...)
}
