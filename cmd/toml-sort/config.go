package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tomlsort/settings"
)

type MainConfig struct {
	All        bool `cli:"name=a aliases=all desc='sort all keys: table keys, inline tables and inline arrays'"`
	InPlace    bool `cli:"name=i aliases=in-place desc='overwrite the files with their sorted form'"`
	IgnoreCase bool `cli:"name=I aliases=ignore-case desc='ignore case when sorting'"`
	Check      bool `cli:"name=check desc='report files which are not sorted and exit 1'"`
	Diff       bool `cli:"name=diff desc='with -check, print a diff of each unsorted file'"`

	NoSortTables     bool   `cli:"name=no-sort-tables desc='keep tables in document order'"`
	SortTableKeys    bool   `cli:"name=sort-table-keys desc='sort the keys of tables'"`
	SortInlineTables bool   `cli:"name=sort-inline-tables desc='sort the keys of inline tables'"`
	SortInlineArrays bool   `cli:"name=sort-inline-arrays desc='sort the values of inline arrays'"`
	SortFirst        string `cli:"name=sort-first desc='comma separated keys to put first, a.b.key puts key first in table a.b'"`

	NoHeader         bool `cli:"name=no-header desc='deprecated, same as -no-header-comments'"`
	NoComments       bool `cli:"name=no-comments desc='remove all comments'"`
	NoHeaderComments bool `cli:"name=no-header-comments desc='remove the comments heading the document'"`
	NoFooterComments bool `cli:"name=no-footer-comments desc='remove the comments ending the document'"`
	NoInlineComments bool `cli:"name=no-inline-comments desc='remove comments at the end of lines'"`
	NoBlockComments  bool `cli:"name=no-block-comments desc='remove comment lines above keys and tables'"`

	SpacesBeforeInlineComment int  `cli:"name=spaces-before-inline-comment desc='spaces before inline comments, 1 to 4 (default 1)'"`
	SpacesIndentInlineArray   int  `cli:"name=spaces-indent-inline-array desc='indent of multi-line array values, 2, 4, 6 or 8 (default 2)'"`
	TrailingCommaInlineArray  bool `cli:"name=trailing-comma-inline-array desc='end multi-line arrays with a comma'"`

	Color   bool   `cli:"name=color desc='color output'"`
	Config  string `cli:"name=config desc='settings file (default: looked up in the current directory)'"`
	Verbose bool   `cli:"name=v desc='log debug messages'"`
	Version bool   `cli:"name=version desc='print the version and exit'"`

	Output string

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	if a == "-" {
		a = ""
	}
	cfg.Output = a
	return a, nil
}

func (cfg *MainConfig) loadSettings() (*settings.Settings, error) {
	if cfg.Config != "" {
		return settings.LoadFile(cfg.Config)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return settings.Load(wd)
}

// merge lays the flags over settings read from a file: booleans are or'ed,
// numbers and lists set on the command line replace the file's.
func (cfg *MainConfig) merge(s *settings.Settings) {
	or := func(dst *bool, v bool) { *dst = *dst || v }
	or(&s.All, cfg.All)
	or(&s.InPlace, cfg.InPlace)
	or(&s.IgnoreCase, cfg.IgnoreCase)
	or(&s.Check, cfg.Check)
	or(&s.NoSortTables, cfg.NoSortTables)
	or(&s.SortTableKeys, cfg.SortTableKeys)
	or(&s.SortInlineTables, cfg.SortInlineTables)
	or(&s.SortInlineArrays, cfg.SortInlineArrays)
	or(&s.NoHeader, cfg.NoHeader)
	or(&s.NoComments, cfg.NoComments)
	or(&s.NoHeaderComments, cfg.NoHeaderComments)
	or(&s.NoFooterComments, cfg.NoFooterComments)
	or(&s.NoInlineComments, cfg.NoInlineComments)
	or(&s.NoBlockComments, cfg.NoBlockComments)
	or(&s.TrailingCommaInlineArray, cfg.TrailingCommaInlineArray)
	if cfg.SpacesBeforeInlineComment != 0 {
		s.SpacesBeforeInlineComment = cfg.SpacesBeforeInlineComment
	}
	if cfg.SpacesIndentInlineArray != 0 {
		s.SpacesIndentInlineArray = cfg.SpacesIndentInlineArray
	}
	if cfg.SortFirst != "" {
		s.SortFirst = strings.Split(cfg.SortFirst, ",")
	}
}

// validate reports every usage problem with files and the merged settings
// at once.
func (cfg *MainConfig) validate(s *settings.Settings, files []string) error {
	var problems []string
	if len(files) > 1 && !s.Check && !s.InPlace {
		problems = append(problems, "'-check' or '-in-place' required if using 2+ FILENAME args")
	}
	if len(files) > 1 && cfg.Output != "" {
		problems = append(problems, "'-o' not allowed with 2+ FILENAME args")
	}
	if s.InPlace && slices.Contains(files, "-") {
		problems = append(problems, "'-in-place' not allowed with stdin FILENAME '-'")
	}
	if cfg.Output != "" && s.InPlace {
		problems = append(problems, "'-o' and '-in-place' cannot be used together")
	}
	if cfg.Diff && !s.Check {
		problems = append(problems, "'-diff' requires '-check'")
	}
	if n := cfg.SpacesBeforeInlineComment; n != 0 && (n < 1 || n > 4) {
		problems = append(problems, fmt.Sprintf("'-spaces-before-inline-comment' must be between 1 and 4, got %d", n))
	}
	switch cfg.SpacesIndentInlineArray {
	case 0, 2, 4, 6, 8:
	default:
		problems = append(problems, fmt.Sprintf("'-spaces-indent-inline-array' must be one of 2, 4, 6, 8, got %d", cfg.SpacesIndentInlineArray))
	}
	if len(problems) == 0 {
		return nil
	}
	buf := &strings.Builder{}
	for i, p := range problems {
		fmt.Fprintf(buf, "\n  %d. %s", i+1, p)
	}
	return fmt.Errorf("%w:%s", cli.ErrUsage, buf.String())
}
