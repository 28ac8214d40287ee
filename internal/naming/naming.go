// Package naming classifies name occurrences in Java syntax trees by their
// syntactic context, following the Java Language Specification's Chapter 6
// naming rules: whether an occurrence declares a binding or references one,
// and which of the seven syntactic name categories a reference belongs to.
//
// The package consumes an already-built tree-sitter parse tree and never
// mutates it. All operations are pure functions of tree shape, so a
// Classifier is safe for concurrent use.
package naming

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Classifier classifies name nodes of a single parse tree. It carries the
// source bytes the tree was parsed from (tree-sitter nodes do not own their
// text) and an optional Resolver for phase-2 reclassification.
type Classifier struct {
	src []byte

	// Resolver supplies semantic disambiguation for the two categories that
	// syntax alone cannot resolve. When nil, ClassifyReference fails with
	// ErrNotImplemented whenever disambiguation is needed.
	Resolver Resolver
}

// New returns a Classifier for a tree parsed from source.
func New(source []byte) *Classifier {
	return &Classifier{src: source}
}

// Text returns the source text a node spans.
func (c *Classifier) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(c.src[n.StartByte():n.EndByte()])
}

// IsName reports whether n denotes a name: a simple or scoped identifier, a
// type reference, or a field access whose object is itself a name. A field
// access over a non-name object (a method call result, say) is not a name.
func (c *Classifier) IsName(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch kindOf(n) {
	case KindFieldAccess:
		return c.IsName(n.ChildByFieldName("object"))
	case KindIdentifier, KindScopedIdentifier, KindTypeIdentifier,
		KindScopedTypeIdentifier, KindGenericType:
		return true
	}
	return false
}

// Render returns the canonical dotted text of a name. Type arguments are not
// part of a name, so a generic type renders as its base name.
func (c *Classifier) Render(n *sitter.Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: a name was expected", ErrInvalidArgument)
	}
	switch kindOf(n) {
	case KindIdentifier, KindTypeIdentifier:
		return c.Text(n), nil
	case KindScopedIdentifier, KindScopedTypeIdentifier:
		scope, trailing := scopePartOf(n), trailingPartOf(n)
		if scope == nil || trailing == nil {
			return "", fmt.Errorf("%w: malformed scoped name %q", ErrInvalidArgument, c.Text(n))
		}
		left, err := c.Render(scope)
		if err != nil {
			return "", err
		}
		return left + "." + c.Text(trailing), nil
	case KindGenericType:
		base := firstNamedOfNameKind(n)
		if base == nil {
			return "", fmt.Errorf("%w: generic type without a base name", ErrInvalidArgument)
		}
		return c.Render(base)
	case KindFieldAccess:
		object := n.ChildByFieldName("object")
		if !c.IsName(object) {
			return "", fmt.Errorf("%w: field access over a non-name object", ErrInvalidArgument)
		}
		left, err := c.Render(object)
		if err != nil {
			return "", err
		}
		return left + "." + c.Text(n.ChildByFieldName("field")), nil
	}
	return "", fmt.Errorf("%w: unknown kind of name: %s", ErrUnsupportedConstruct, n.Kind())
}

// IsQualified reports whether a name contains a "." separator.
func (c *Classifier) IsQualified(n *sitter.Node) (bool, error) {
	if !c.IsName(n) {
		return false, fmt.Errorf("%w: a name was expected", ErrInvalidArgument)
	}
	rendered, err := c.Render(n)
	if err != nil {
		return false, err
	}
	for i := 0; i < len(rendered); i++ {
		if rendered[i] == '.' {
			return true, nil
		}
	}
	return false, nil
}

// IsSimple reports whether a name is a single identifier.
func (c *Classifier) IsSimple(n *sitter.Node) (bool, error) {
	qualified, err := c.IsQualified(n)
	if err != nil {
		return false, err
	}
	return !qualified, nil
}

// Qualifier returns the left-hand name of a compound dotted name ("a.b" for
// "a.b.c"), or nil when the name is simple.
func (c *Classifier) Qualifier(n *sitter.Node) *sitter.Node {
	switch kindOf(n) {
	case KindScopedIdentifier, KindScopedTypeIdentifier:
		return scopePartOf(n)
	case KindGenericType:
		return c.Qualifier(firstNamedOfNameKind(n))
	case KindFieldAccess:
		if object := n.ChildByFieldName("object"); c.IsName(object) {
			return object
		}
	}
	return nil
}

// rendersAs reports whether n renders to the same dotted text as other.
// Errors mean the two cannot be compared and count as not equal.
func (c *Classifier) rendersAs(n, other *sitter.Node) bool {
	a, err := c.Render(n)
	if err != nil {
		return false
	}
	b, err := c.Render(other)
	if err != nil {
		return false
	}
	return a == b
}

func (c *Classifier) unsupported(n *sitter.Node, what string) error {
	parentKind := "no parent"
	if p := n.Parent(); p != nil {
		parentKind = p.Kind()
	}
	pos := n.StartPosition()
	return fmt.Errorf("%w: cannot classify %s of name %q in %s at %d:%d",
		ErrUnsupportedConstruct, what, c.Text(n), parentKind, pos.Row+1, pos.Column+1)
}
