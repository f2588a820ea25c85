package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tomlsort/encode"
	"github.com/signadot/tomlsort/ir"
	"github.com/signadot/tomlsort/token"
)

func TestParseRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"a = 1\n",
		"a=1\n",
		"# only a comment\n",
		"title = \"TOML\" # inline\n\n[owner]\nname = 'Tom'\ndob = 1979-05-27T07:32:00-08:00\n",
		"[a.b.c]\nx = 1\n",
		"[[fruit]]\nname = \"apple\"\n\n[fruit.physical]\ncolor = \"red\"\n\n[[fruit]]\nname = \"banana\"\n",
		"arr = [1, 2, 3]\n",
		"arr = [\n  1, # one\n  # standalone\n  2,\n]\n",
		"point = { x = 1, y = 2 }\nempty = {}\n",
		"site.\"google.com\" = true\n",
		"s = \"\"\"\nmulti\nline\"\"\"\nl = '''\nraw'''\n",
		"  indented = 1\n\t# tab comment\n",
		"ld = 1979-05-27 07:32:00\nf = 6.02e+23\nh = 0xDEAD_BEEF\nn = -inf\n",
		"nested = [[1, 2], ['a', \"b\"]]\n",
		"[x]\n[y]\n[x.z]\n",
	}
	for _, in := range ins {
		doc, err := ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		got := encode.MustString(doc)
		if diff := cmp.Diff(strings.TrimSpace(in), got); diff != "" {
			t.Errorf("round trip %q (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseSuperTables(t *testing.T) {
	doc, err := ParseString("[a.b.c]\nx = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	a := doc.Lookup("a")
	if a == nil || a.Type != ir.TableType || !a.IsSuper {
		t.Fatalf("a: %+v", a)
	}
	b := a.Lookup("b")
	if b == nil || !b.IsSuper {
		t.Fatalf("b: %+v", b)
	}
	c := b.Lookup("c")
	if c == nil || c.IsSuper {
		t.Fatalf("c: %+v", c)
	}
	if v := c.Lookup("x"); v == nil || v.Raw != "1" {
		t.Errorf("x: %+v", v)
	}
}

func TestParseCommentPlacement(t *testing.T) {
	doc, err := ParseString("[a]\nx = 1\n\n# about b\n[b]\ny = 2\n")
	if err != nil {
		t.Fatal(err)
	}
	a := doc.Lookup("a")
	var types []ir.Type
	for _, e := range a.Body {
		types = append(types, e.Value.Type)
	}
	want := []ir.Type{ir.ScalarType, ir.WhitespaceType, ir.CommentType}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("body of a (-want +got):\n%s", diff)
	}
	if c := a.Body[2].Value; c.Trivia.Comment != "# about b" {
		t.Errorf("comment %q", c.Trivia.Comment)
	}
}

func TestParseArrayOfTables(t *testing.T) {
	doc, err := ParseString("[[x]]\na = 1\n[x.sub]\nk = 0\n[[x]]\na = 2\n[y]\n[[x]]\na = 3\n")
	if err != nil {
		t.Fatal(err)
	}
	var aots []*ir.Node
	for _, e := range doc.Body {
		if e.Key != nil && e.Key.Name() == "x" {
			aots = append(aots, e.Value)
		}
	}
	if len(aots) != 2 {
		t.Fatalf("got %d arrays of tables for x", len(aots))
	}
	if n := len(aots[0].Tables); n != 2 {
		t.Errorf("first array has %d tables", n)
	}
	if n := len(aots[1].Tables); n != 1 {
		t.Errorf("second array has %d tables", n)
	}
	if sub := aots[0].Tables[0].Lookup("sub"); sub == nil || sub.Type != ir.TableType {
		t.Errorf("sub table not under first element")
	}
}

func TestParseArrayItems(t *testing.T) {
	doc, err := ParseString("a = [\n  2, # two\n\n  # own line\n  1,\n]\n")
	if err != nil {
		t.Fatal(err)
	}
	arr := doc.Lookup("a")
	if len(arr.Items) != 3 {
		t.Fatalf("got %d items", len(arr.Items))
	}
	if c := arr.Items[0].Comment; c == nil || c.Trivia.Comment != "# two" || c.Trivia.CommentWS != " " {
		t.Errorf("inline comment: %+v", c)
	}
	if !arr.Items[1].IsComment() || arr.Items[1].Indent != "\n\n  " {
		t.Errorf("stand alone comment: %+v", arr.Items[1])
	}
	if arr.Items[2].Comma != "," || arr.Closing != "\n" {
		t.Errorf("last item: %+v closing %q", arr.Items[2], arr.Closing)
	}
}

func TestParseKeys(t *testing.T) {
	doc, err := ParseString("\"quoted key\" = 1\n'lit' = 2\na . b = 3\n")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range doc.Body {
		names = append(names, e.Key.Name())
	}
	if diff := cmp.Diff([]string{"quoted key", "lit", "a.b"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	pts := []struct {
		in   string
		line int
	}{
		{in: "a = \n", line: 1},
		{in: "a = 1\na = 2\n", line: 2},
		{in: "[a]\nx = 1\n[a]\n", line: 3},
		{in: "a = {x = 1}\n[a]\n", line: 2},
		{in: "a = [1, 2\n"},
		{in: "x = 1\na = \"unterminated\n", line: 2},
		{in: "= 1\n", line: 1},
		{in: "a = 1 b\n", line: 1},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not a parse error", pt.in, err)
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: %T is not *Error", pt.in, err)
			continue
		}
		if pt.line != 0 && pe.Line != pt.line {
			t.Errorf("%q: got line %d in %v", pt.in, pe.Line, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	in := "a = 1\nb = [1 2]\n"
	_, err := ParseString(in, ParseValidate(false))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Line != 2 || pe.Col != 8 {
		t.Errorf("got line %d col %d", pe.Line, pe.Col)
	}
	if pe.Context != "b = [1 2]" {
		t.Errorf("context %q", pe.Context)
	}
}

func TestParseErrorDetail(t *testing.T) {
	pts := []struct {
		in       string
		line     int
		col      int
		err      error
		context  string
		validate bool
	}{
		{in: "a = \n", line: 1, col: 5, err: token.ErrMissingValue, context: "a = "},
		{in: "x = 1\n  a = 1\n  a = 2\n", line: 3, col: 3, context: "  a = 2", validate: true},
		{in: "[t]\nx = 1\n\n['t']\n", line: 4, col: 2, context: "['t']", validate: true},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: got %v", pt.in, err)
			continue
		}
		if pe.Line != pt.line || pe.Col != pt.col || pe.Context != pt.context {
			t.Errorf("%q: got line %d col %d context %q", pt.in, pe.Line, pe.Col, pe.Context)
		}
		if pt.err != nil && !errors.Is(err, pt.err) {
			t.Errorf("%q: %v is not %v", pt.in, err, pt.err)
		}
		if pt.validate && Validate([]byte(pt.in)) == nil {
			t.Errorf("%q: expected the decoder to reject it", pt.in)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]byte("a = 1\n[b]\nc = 2\n")); err != nil {
		t.Error(err)
	}
	err := Validate([]byte("a = 1\n[b]\nc = 2\nc = 3\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v", err)
	}
}
