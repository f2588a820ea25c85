package tomlsort

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/signadot/tomlsort/ir"
	"github.com/signadot/tomlsort/parse"
)

func boolp(b bool) *bool { return &b }

func TestSorted(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "\n",
		},
		{
			name: "basic",
			in:   "[b]\nx=1\n[a]\ny=2\n",
			want: "[a]\ny = 2\n\n[b]\nx = 1\n",
		},
		{
			name: "keys kept",
			in:   "b = 1\na = 2\n",
			want: "b = 1\na = 2\n",
		},
		{
			name: "keys sorted",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, TableKeys: true})},
			in:   "b = 1\na = 2\nB = 3\n",
			want: "B = 3\na = 2\nb = 1\n",
		},
		{
			name: "ignore case",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, TableKeys: true, IgnoreCase: true})},
			in:   "b = 1\nC = 2\na = 3\n",
			want: "a = 3\nb = 1\nC = 2\n",
		},
		{
			name: "dotted keys",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, TableKeys: true})},
			in:   "a.b = 1\na.a = 2\n",
			want: "a.a = 2\na.b = 1\n",
		},
		{
			name: "tables kept",
			opts: []Option{WithSortConfiguration(SortConfiguration{})},
			in:   "[b]\n[a]\n",
			want: "[b]\n\n[a]\n",
		},
		{
			name: "keys before tables",
			in:   "[t]\n[t.s]\nx = 1\n",
			want: "[t]\n\n[t.s]\nx = 1\n",
		},
		{
			name: "pinned keys",
			opts: []Option{WithOverrides(Overrides{
				{Pattern: "owner", Config: SortOverrideConfiguration{First: []string{"name", "dob"}}},
			})},
			in:   "[owner]\ndob = 1\nemail = 3\nname = 2\n",
			want: "[owner]\nname = 2\ndob = 1\nemail = 3\n",
		},
		{
			name: "comment reattachment",
			in:   "[x]\n\n# note\n[y]\n",
			want: "[x]\n\n# note\n[y]\n",
		},
		{
			name: "comment follows its table",
			in:   "a = 1\n[y]\n\n# about x\n[x]\n",
			want: "a = 1\n\n# about x\n[x]\n\n[y]\n",
		},
		{
			name: "comment sorted to the top",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, TableKeys: true})},
			in:   "b = 1\n# about a\na = 2\n",
			want: "# about a\n\na = 2\nb = 1\n",
		},
		{
			name: "comment sorted to the top without header",
			opts: []Option{
				WithSortConfiguration(SortConfiguration{Tables: true, TableKeys: true}),
				WithCommentConfiguration(CommentConfiguration{Footer: true, Inline: true, Block: true}),
			},
			in:   "b = 1\n# about a\na = 2\n",
			want: "a = 2\nb = 1\n",
		},
		{
			name: "table comment sorted to the top",
			in:   "[y]\n\n# about x\n[x]\n",
			want: "# about x\n\n[x]\n\n[y]\n",
		},
		{
			name: "orphaned comment",
			in:   "a = 1\n# gone\n\nb = 2\n",
			want: "a = 1\nb = 2\n",
		},
		{
			name: "comment formatting",
			in:   "#header\n\n[a]\n   #block  \n  x = 1    #inline\n",
			want: "# header\n\n[a]\n# block\nx = 1 # inline\n",
		},
		{
			name: "header without blank line",
			in:   "# header\n[a]\n",
			want: "# header\n\n[a]\n",
		},
		{
			name: "footer",
			in:   "[b]\n[a]\nx = 1\n# footer\n",
			want: "[a]\nx = 1\n\n[b]\n\n# footer\n",
		},
		{
			name: "super table comments",
			in:   "# head\n\n[a.c]\nx = 1\n\n# about b\n[a.b]\ny = 2\n",
			want: "# head\n\n# about b\n[a.b]\ny = 2\n\n[a.c]\nx = 1\n",
		},
		{
			name: "super table merged",
			in:   "[a.b]\n[a]\nx = 1\n",
			want: "[a]\nx = 1\n\n[a.b]\n",
		},
		{
			name: "array of tables",
			in:   "[[p]]\nn = 2\n# second\n[[p]]\nn = 1\n",
			want: "[[p]]\nn = 2\n\n# second\n[[p]]\nn = 1\n",
		},
		{
			name: "array of tables children sorted",
			in:   "[[p]]\n[p.z]\n[p.a]\n",
			want: "[[p]]\n\n[p.a]\n\n[p.z]\n",
		},
		{
			name: "blank lines collapsed",
			in:   "\n\n\na = 1\r\n\r\n\r\n\r\nb = 2\n\n\n",
			want: "a = 1\nb = 2\n",
		},
		{
			name: "inline array kept",
			in:   "a = [3, 1, 2]\n",
			want: "a = [3, 1, 2]\n",
		},
		{
			name: "inline array sorted",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, InlineArrays: true})},
			in:   "a = [3,1,   2]\n",
			want: "a = [1, 2, 3]\n",
		},
		{
			name: "multi-line array",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, InlineArrays: true})},
			in:   "a = [\n    3, # three\n  # one\n  1,\n]\n",
			want: "a = [\n  # one\n  1,\n  3 # three\n]\n",
		},
		{
			name: "multi-line array trailing comma",
			opts: []Option{WithFormattingConfiguration(FormattingConfiguration{
				SpacesBeforeInlineComment: 2,
				SpacesIndentInlineArray:   4,
				TrailingCommaInlineArray:  true,
			})},
			in:   "a = [\n  1,\n  2 # two\n]\n",
			want: "a = [\n    1,\n    2,  # two\n]\n",
		},
		{
			name: "nested multi-line arrays",
			in:   "a = [\n[\n1,\n2\n],\n]\n",
			want: "a = [\n  [\n    1,\n    2\n  ]\n]\n",
		},
		{
			name: "inline table kept",
			in:   "a = {b=1,  a=2}\n",
			want: "a = { b = 1, a = 2 }\n",
		},
		{
			name: "inline table sorted",
			opts: []Option{WithSortConfiguration(SortConfiguration{Tables: true, InlineTables: true})},
			in:   "a = {b=1, a={d=[], c=2}}\n",
			want: "a = { a = { c = 2, d = [] }, b = 1 }\n",
		},
		{
			name: "inline table pinned",
			opts: []Option{WithOverrides(Overrides{
				{Pattern: "t", Config: SortOverrideConfiguration{First: []string{"z"}}},
			})},
			in:   "t = {a = 1, z = 2}\n",
			want: "t = { z = 2, a = 1 }\n",
		},
		{
			name: "comments disabled",
			opts: []Option{WithCommentConfiguration(CommentConfiguration{})},
			in:   "# head\n\n# block\na = [\n  # in array\n  1, # inline\n]\nb = 1 # inline\n# foot\n",
			want: "a = [\n  1\n]\nb = 1\n",
		},
		{
			name: "glob override",
			opts: []Option{WithOverrides(Overrides{
				{Pattern: "tool.*", Config: SortOverrideConfiguration{TableKeys: boolp(true)}},
			})},
			in:   "b = 2\na = 1\n[tool.x]\nd = 1\nc = 2\n",
			want: "b = 2\na = 1\n\n[tool.x]\nc = 2\nd = 1\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sorted(tc.in, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			again, err := Sorted(got, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}

var corpusConfigs = map[string][]Option{
	"default": nil,
	"all": {WithSortConfiguration(SortConfiguration{
		Tables: true, TableKeys: true, InlineTables: true, InlineArrays: true,
	})},
	"unsorted": {WithSortConfiguration(SortConfiguration{})},
	"ignore case and pins": {
		WithSortConfiguration(SortConfiguration{Tables: true, TableKeys: true, IgnoreCase: true, First: []string{"name"}}),
		WithOverrides(Overrides{{Pattern: "**", Config: SortOverrideConfiguration{InlineArrays: boolp(true)}}}),
	},
	"formatting": {WithFormattingConfiguration(FormattingConfiguration{
		SpacesBeforeInlineComment: 4, SpacesIndentInlineArray: 8, TrailingCommaInlineArray: true,
	})},
}

// arraysSorted lists the corpus configurations which reorder the elements
// of inline arrays.
var arraysSorted = map[string]bool{"all": true, "ignore case and pins": true}

func corpus(t *testing.T) map[string]string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no test documents")
	}
	res := make(map[string]string, len(paths))
	for _, p := range paths {
		d, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		res[filepath.Base(p)] = string(d)
	}
	return res
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := toml.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid toml: %v\n%s", err, s)
	}
	return v
}

// keyPaths adds the dotted path of every key below v to res. Keys inside
// arrays are recorded under the array path with a "[]" suffix.
func keyPaths(v any, prefix string, res map[string]bool) map[string]bool {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			res[p] = true
			keyPaths(e, p, res)
		}
	case []any:
		for _, e := range x {
			keyPaths(e, prefix+"[]", res)
		}
	}
	return res
}

func byText(a, b any) bool {
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func TestKeyPaths(t *testing.T) {
	v := map[string]any{
		"a": int64(1),
		"t": map[string]any{"x": []any{map[string]any{"y": true}}},
	}
	want := map[string]bool{"a": true, "t": true, "t.x": true, "t.x[].y": true}
	if diff := cmp.Diff(want, keyPaths(v, "", map[string]bool{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	sorted := map[string]any{"a": []any{int64(1), int64(3)}}
	unsorted := map[string]any{"a": []any{int64(3), int64(1)}}
	if cmp.Equal(sorted, unsorted) {
		t.Error("expected element order to matter")
	}
	if !cmp.Equal(sorted, unsorted, cmpopts.SortSlices(byText)) {
		t.Error("expected arrays to compare as multisets")
	}
}

func TestCorpus(t *testing.T) {
	for file, in := range corpus(t) {
		for name, opts := range corpusConfigs {
			t.Run(file+"/"+name, func(t *testing.T) {
				got, err := Sorted(in, opts...)
				if err != nil {
					t.Fatal(err)
				}
				again, err := Sorted(got, opts...)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(got, again); diff != "" {
					t.Errorf("not idempotent (-first +second):\n%s", diff)
				}
				before, after := decode(t, in), decode(t, got)
				if diff := cmp.Diff(keyPaths(before, "", map[string]bool{}), keyPaths(after, "", map[string]bool{})); diff != "" {
					t.Errorf("keys changed (-in +out):\n%s", diff)
				}
				var opt []cmp.Option
				if arraysSorted[name] {
					opt = append(opt, cmpopts.SortSlices(byText))
				}
				if diff := cmp.Diff(before, after, opt...); diff != "" {
					t.Errorf("content changed (-in +out):\n%s", diff)
				}
				if a, b := strings.Count(in, "#"), strings.Count(got, "#"); a != b {
					t.Errorf("%d comments in, %d out:\n%s", a, b, got)
				}
				if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") || strings.Contains(got, "\n\n\n") {
					t.Errorf("bad blank lines:\n%q", got)
				}
			})
		}
	}
}

func TestCorpusNoComments(t *testing.T) {
	opts := []Option{WithCommentConfiguration(CommentConfiguration{})}
	for file, in := range corpus(t) {
		t.Run(file, func(t *testing.T) {
			got, err := Sorted(in, opts...)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Contains(got, "#") {
				t.Errorf("comments left:\n%s", got)
			}
			if diff := cmp.Diff(decode(t, in), decode(t, got)); diff != "" {
				t.Errorf("content changed (-in +out):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Sorted("\n\na = 1\na = 2\n")
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	_, err = Sorted("a = [1 2]\n")
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{name: "default"},
		{
			name: "spaces",
			opts: []Option{WithFormattingConfiguration(FormattingConfiguration{})},
			want: ErrInvalidConfig,
		},
		{
			name: "indent",
			opts: []Option{WithFormattingConfiguration(FormattingConfiguration{SpacesBeforeInlineComment: 1, SpacesIndentInlineArray: -2})},
			want: ErrInvalidConfig,
		},
		{
			name: "bad pattern",
			opts: []Option{WithOverrides(Overrides{{Pattern: "a[b"}})},
			want: ErrInvalidOverride,
		},
		{
			name: "duplicate pattern",
			opts: []Option{WithOverrides(Overrides{{Pattern: "a"}, {Pattern: "a"}})},
			want: ErrInvalidOverride,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts...)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMalformed(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SortDocument(ir.NewTable(false, false)); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected malformed document, got %v", err)
	}

	doc := ir.NewDocument()
	doc.Add(ir.BareKey("a"), ir.NewTable(true, false))
	_, err = s.SortDocument(doc)
	var merr *MalformedError
	if !errors.As(err, &merr) {
		t.Fatalf("expected a malformed error, got %v", err)
	}
	if diff := cmp.Diff(Path{"a"}, merr.Path); diff != "" {
		t.Errorf("path (-want +got):\n%s", diff)
	}

	doc = ir.NewDocument()
	doc.Add(ir.BareKey("a"), ir.NewAoT())
	if _, err := s.SortDocument(doc); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected malformed document for an empty array of tables, got %v", err)
	}

	doc = ir.NewDocument()
	doc.Add(ir.BareKey("a"), ir.Comment("# c"))
	if _, err := s.SortDocument(doc); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected malformed document for a keyed comment, got %v", err)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "\n\n"},
		{"a", "\na\n"},
		{"\n\n  a = 1\n\n\n\nb = 2  \n\n", "\na = 1\n\nb = 2\n"},
		{"a\r\n\r\n\r\nb\r\n", "\na\n\nb\n"},
	}
	for _, tc := range tests {
		if got := CleanText(tc.in); got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatComment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"#", "#"},
		{"#x", "# x"},
		{"#   x  ", "# x"},
		{"## x", "# # x"},
	}
	for _, tc := range tests {
		if got := formatComment(tc.in); got != tc.want {
			t.Errorf("formatComment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
