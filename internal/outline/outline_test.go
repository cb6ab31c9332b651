package outline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if nodes := Parse(""); len(nodes) != 0 {
			t.Errorf("expected no nodes, got %d", len(nodes))
		}
	})

	t.Run("non-matching lines are skipped", func(t *testing.T) {
		input := "# Summary\n\nsome prose\n- not a link\n- [Intro](intro.md)\n"
		nodes := Parse(input)
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		if nodes[0].Title != "Intro" {
			t.Errorf("expected title %q, got %q", "Intro", nodes[0].Title)
		}
	})

	t.Run("position counts all lines", func(t *testing.T) {
		input := "# Summary\n\n- [A](a.md)\n\ncommentary\n  - [B](b.md)\n"
		nodes := Parse(input)
		if len(nodes) != 2 {
			t.Fatalf("expected 2 nodes, got %d", len(nodes))
		}
		if nodes[0].Position != 3 {
			t.Errorf("expected position 3 for A, got %d", nodes[0].Position)
		}
		if nodes[1].Position != 6 {
			t.Errorf("expected position 6 for B, got %d", nodes[1].Position)
		}
	})

	t.Run("depth is raw whitespace count", func(t *testing.T) {
		input := "- [A](a.md)\n  - [B](b.md)\n    - [C](c.md)\n"
		nodes := Parse(input)
		if len(nodes) != 3 {
			t.Fatalf("expected 3 nodes, got %d", len(nodes))
		}
		for i, want := range []int{0, 2, 4} {
			if nodes[i].Depth != want {
				t.Errorf("node %d: expected depth %d, got %d", i, want, nodes[i].Depth)
			}
		}
	})

	t.Run("filename is the base name", func(t *testing.T) {
		nodes := Parse("- [Deep](some/nested/path/deep.md)\n")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		if nodes[0].Filename != "deep.md" {
			t.Errorf("expected filename %q, got %q", "deep.md", nodes[0].Filename)
		}
	})

	t.Run("title and filename are trimmed", func(t *testing.T) {
		nodes := Parse("- [ Spaced Title ](dir/spaced.md )\n")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		if nodes[0].Title != "Spaced Title" {
			t.Errorf("expected trimmed title, got %q", nodes[0].Title)
		}
		if nodes[0].Filename != "spaced.md" {
			t.Errorf("expected trimmed filename, got %q", nodes[0].Filename)
		}
	})

	t.Run("non-md links are ignored", func(t *testing.T) {
		nodes := Parse("- [Site](https://example.com)\n- [Doc](doc.md)\n")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		if nodes[0].Filename != "doc.md" {
			t.Errorf("expected doc.md, got %q", nodes[0].Filename)
		}
	})
}

func TestNodeStem(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"intro.md", "intro"},
		{"no_extension", "no_extension"},
		{"dotted.name.md", "dotted.name"},
	}
	for _, tt := range tests {
		n := Node{Filename: tt.filename}
		if got := n.Stem(); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing outline is an error", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "SUMMARY.md")); err == nil {
			t.Fatal("expected error for missing outline")
		}
	})

	t.Run("reads and parses", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "SUMMARY.md")
		if err := os.WriteFile(path, []byte("- [A](a.md)\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		nodes, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(nodes) != 1 || nodes[0].Filename != "a.md" {
			t.Errorf("unexpected nodes: %+v", nodes)
		}
	})
}
