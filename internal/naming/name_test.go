package naming

import (
	"errors"
	"testing"
)

func TestIsName(t *testing.T) {
	src := `
import a.b.C;

class T {
    Foo field;

    int m() {
        return f().x;
    }
}
`
	c, root := parseSource(t, src)

	if !c.IsName(findNode(t, c, root, "scoped_identifier", "a.b.C")) {
		t.Error("scoped identifier should be a name")
	}
	if !c.IsName(findNode(t, c, root, "type_identifier", "Foo")) {
		t.Error("type identifier should be a name")
	}
	if !c.IsName(findNode(t, c, root, "identifier", "field")) {
		t.Error("identifier should be a name")
	}

	// Field access over a method call result is not a name.
	access := findNode(t, c, root, "field_access", "f().x")
	if c.IsName(access) {
		t.Error("field access over a call result should not be a name")
	}
	if _, err := c.Render(access); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument rendering non-name, got %v", err)
	}
	if c.IsName(root) {
		t.Error("the compilation unit is not a name")
	}
}

func TestRender(t *testing.T) {
	src := `
import a.b.C;

class T {
    void m() {
        List<String> l = null;
        int v = p.q.r;
    }
}
`
	c, root := parseSource(t, src)

	cases := []struct {
		kind, text string
		want       string
	}{
		{"scoped_identifier", "a.b.C", "a.b.C"},
		{"scoped_identifier", "a.b", "a.b"},
		{"generic_type", "List<String>", "List"},
		{"field_access", "p.q.r", "p.q.r"},
		{"field_access", "p.q", "p.q"},
		{"identifier", "v", "v"},
	}
	for _, tc := range cases {
		got, err := c.Render(findNode(t, c, root, tc.kind, tc.text))
		if err != nil {
			t.Errorf("Render(%s %q): %v", tc.kind, tc.text, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Render(%s %q) = %q, want %q", tc.kind, tc.text, got, tc.want)
		}
	}
}

func TestQualifiedAndSimple(t *testing.T) {
	src := `import a.b.C;

class T {
    int x;
}
`
	c, root := parseSource(t, src)

	qualified := findNode(t, c, root, "scoped_identifier", "a.b.C")
	simple := findNode(t, c, root, "identifier", "x")

	if got, err := c.IsQualified(qualified); err != nil || !got {
		t.Errorf("IsQualified(a.b.C) = %v, %v", got, err)
	}
	if got, err := c.IsSimple(qualified); err != nil || got {
		t.Errorf("IsSimple(a.b.C) = %v, %v", got, err)
	}
	if got, err := c.IsQualified(simple); err != nil || got {
		t.Errorf("IsQualified(x) = %v, %v", got, err)
	}
	if got, err := c.IsSimple(simple); err != nil || !got {
		t.Errorf("IsSimple(x) = %v, %v", got, err)
	}

	if _, err := c.IsQualified(root); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for non-name, got %v", err)
	}
}

// Render and IsQualified must agree: a name is qualified exactly when its
// rendered text contains a separator.
func TestQualifyRenderConsistency(t *testing.T) {
	src := `
package p.q;

import a.b.C;

class T {
    Foo f;

    int m() {
        return x + p.q.r;
    }
}
`
	c, root := parseSource(t, src)

	checked := 0
	for _, probe := range []struct{ kind, text string }{
		{"scoped_identifier", "p.q"},
		{"scoped_identifier", "a.b.C"},
		{"type_identifier", "Foo"},
		{"identifier", "x"},
		{"field_access", "p.q.r"},
	} {
		n := findNode(t, c, root, probe.kind, probe.text)
		rendered, err := c.Render(n)
		if err != nil {
			t.Fatalf("Render(%q): %v", probe.text, err)
		}
		qualified, err := c.IsQualified(n)
		if err != nil {
			t.Fatalf("IsQualified(%q): %v", probe.text, err)
		}
		if qualified != containsDot(rendered) {
			t.Errorf("IsQualified(%q) = %v, rendered %q", probe.text, qualified, rendered)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no names checked")
	}
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
