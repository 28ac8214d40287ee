package naming

import (
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"jname/internal/parser"
)

func parseSource(t *testing.T, src string) (*Classifier, *sitter.Node) {
	t.Helper()

	tree, err := parser.New().Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(tree.Close)

	return New([]byte(src)), tree.RootNode()
}

// findNth returns the nth (1-based) node of the given kind and source text.
// An empty kind matches any kind.
func findNth(t *testing.T, c *Classifier, root *sitter.Node, kind, text string, nth int) *sitter.Node {
	t.Helper()

	var found *sitter.Node
	seen := 0
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if found != nil || n == nil {
			return
		}
		if (kind == "" || n.Kind() == kind) && c.Text(n) == text {
			seen++
			if seen == nth {
				found = n
				return
			}
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	if found == nil {
		t.Fatalf("no %s node #%d with text %q", kind, nth, text)
	}
	return found
}

func findNode(t *testing.T, c *Classifier, root *sitter.Node, kind, text string) *sitter.Node {
	t.Helper()
	return findNth(t, c, root, kind, text, 1)
}
