package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if back != typ {
			t.Errorf("got %s want %s", back, typ)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Object")); err == nil {
		t.Error("expected error for unknown type")
	}
	if Type(99).String() != "<unknown type>" {
		t.Errorf("unexpected %q", Type(99).String())
	}
}

func TestKeyName(t *testing.T) {
	k := &Key{Parts: []KeyPart{
		{Raw: "site", Name: "site"},
		{Raw: `"google.com"`, Name: "google.com"},
	}}
	if got := k.Name(); got != "site.google.com" {
		t.Errorf("Name() = %q", got)
	}
	if got := k.String(); got != `site."google.com"` {
		t.Errorf("String() = %q", got)
	}
	if !k.IsDotted() {
		t.Error("expected dotted")
	}
	c := k.Clone()
	c.Parts[0].Name = "other"
	if k.Parts[0].Name != "site" {
		t.Error("clone shares parts")
	}
}

func TestBody(t *testing.T) {
	tbl := NewTable(false, false)
	tbl.Add(BareKey("a"), Scalar(IntegerKind, "1"))
	tbl.AddTrivia(Comment("# c"))
	tbl.Add(BareKey("b"), Scalar(IntegerKind, "2"))
	tbl.AddTrivia(Whitespace("\n"))
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d", tbl.Len())
	}
	if last := tbl.Last(); last == nil || last.Raw != "2" {
		t.Errorf("Last() = %v", last)
	}
	if v := tbl.Lookup("a"); v == nil || v.Raw != "1" {
		t.Errorf("Lookup(a) = %v", v)
	}
	if tbl.Lookup("z") != nil {
		t.Error("Lookup(z) should be nil")
	}
	aot := NewAoT()
	aot.Append(NewTable(false, false))
	if aot.Len() != 1 || !aot.Tables[0].IsAoTElement {
		t.Error("Append should mark element tables")
	}
}
