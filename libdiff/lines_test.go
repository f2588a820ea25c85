package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []Hunk
	}{
		{
			name: "equal",
			from: "a\nb\n",
			to:   "a\nb\n",
		},
		{
			name: "append",
			from: "a\n",
			to:   "a\nb\n",
			want: []Hunk{{FromLine: 1, ToLine: 1, ToCount: 1, Inserted: []string{"b\n"}}},
		},
		{
			name: "replace",
			from: "a",
			to:   "b",
			want: []Hunk{{FromCount: 1, ToCount: 1, Deleted: []string{"a"}, Inserted: []string{"b"}}},
		},
		{
			name: "move",
			from: "a\nb\nc\n",
			to:   "a\nc\nd\n",
			want: []Hunk{
				{FromLine: 1, FromCount: 1, ToLine: 1, Deleted: []string{"b\n"}},
				{FromLine: 3, ToLine: 2, ToCount: 1, Inserted: []string{"d\n"}},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines(tc.from, tc.to)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnified(t *testing.T) {
	if got := Unified("a", "b", "x\n", "x\n", false); got != "" {
		t.Errorf("expected no diff, got %q", got)
	}
	got := Unified("f.toml", "f.toml (sorted)", "a\nb\nc\n", "a\nc\nd\n", false)
	want := "--- f.toml\n" +
		"+++ f.toml (sorted)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		" c\n" +
		"+d\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnifiedGroups(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"
	to := "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n"
	got := Unified("a", "b", from, to, false)
	want := "--- a\n" +
		"+++ b\n" +
		"@@ -1,3 +1,4 @@\n" +
		"+0\n" +
		" 1\n" +
		" 2\n" +
		" 3\n" +
		"@@ -9,4 +10,3 @@\n" +
		" 9\n" +
		" 10\n" +
		" 11\n" +
		"-12\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
