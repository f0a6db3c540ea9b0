package tree23

import (
	"bytes"
	"strings"
	"testing"
)

func TestToDot(t *testing.T) {
	tree := makeIntTree(t)
	insertKeys(t, tree, 1, 2, 3, 4, 5)
	var buf bytes.Buffer
	if err := tree.ToDot(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("output is not a DOT digraph:\n%s", out)
	}
	// 2 edges below the root, 5 edges to leaves
	if edges := strings.Count(out, "->"); edges != 7 {
		t.Errorf("expected 7 edges, found %d:\n%s", edges, out)
	}
	if boxes := strings.Count(out, "shape=box"); boxes != 5 {
		t.Errorf("expected 5 leaf boxes, found %d", boxes)
	}
}

func TestToDotEmpty(t *testing.T) {
	tree := makeIntTree(t)
	var buf bytes.Buffer
	if err := tree.ToDot(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty tree must not produce edges")
	}
}
