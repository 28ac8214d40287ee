package naming

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// when reports whether n's parent has kind k and rel holds between parent and
// child. All higher-level rules are built from this check.
func when(n *sitter.Node, k Kind, rel func(parent, child *sitter.Node) bool) bool {
	p := n.Parent()
	if p == nil || kindOf(p) != k {
		return false
	}
	return rel(p, n)
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.Id() == b.Id()
}

// isField reports that the child occupies the parent's given structural field.
func isField(name string) func(p, c *sitter.Node) bool {
	return func(p, c *sitter.Node) bool {
		return sameNode(p.ChildByFieldName(name), c)
	}
}

func anyChild(p, c *sitter.Node) bool { return true }

// hasChildOfKind reports whether p has a direct child (named or not) of kind k.
func hasChildOfKind(p *sitter.Node, kind string) bool {
	for i := uint(0); i < p.ChildCount(); i++ {
		if p.Child(i).Kind() == kind {
			return true
		}
	}
	return false
}

// firstNamedOfNameKind returns p's first named child that denotes a name.
// Used for parents whose grammar rule carries the name positionally
// (package_declaration, import_declaration, module directives).
func firstNamedOfNameKind(p *sitter.Node) *sitter.Node {
	for i := uint(0); i < p.NamedChildCount(); i++ {
		child := p.NamedChild(i)
		if isNameKind(kindOf(child)) {
			return child
		}
	}
	return nil
}

// scopePartOf returns the qualifier of a compound name node and nil for
// anything else. scoped_identifier carries it in the "scope" field;
// scoped_type_identifier has no fields, so the first named name-shaped child
// is the qualifier.
func scopePartOf(p *sitter.Node) *sitter.Node {
	switch kindOf(p) {
	case KindScopedIdentifier:
		if s := p.ChildByFieldName("scope"); s != nil {
			return s
		}
		return firstNamedOfNameKind(p)
	case KindScopedTypeIdentifier:
		return firstNamedOfNameKind(p)
	}
	return nil
}

// trailingPartOf returns the identifier to the right of the last "." in a
// compound name node.
func trailingPartOf(p *sitter.Node) *sitter.Node {
	switch kindOf(p) {
	case KindScopedIdentifier:
		if n := p.ChildByFieldName("name"); n != nil {
			return n
		}
	case KindScopedTypeIdentifier:
	default:
		return nil
	}
	for i := p.NamedChildCount(); i > 0; i-- {
		child := p.NamedChild(i - 1)
		if isNameKind(kindOf(child)) {
			return child
		}
	}
	return nil
}

// importIsStatic reports a static import. The "static" keyword is an
// anonymous token child of the import declaration.
func importIsStatic(imp *sitter.Node) bool {
	return hasChildOfKind(imp, "static")
}

// importOnDemand reports a ".*" import.
func importOnDemand(imp *sitter.Node) bool {
	return hasChildOfKind(imp, "asterisk")
}

// importedName returns the dotted name an import declaration targets.
func importedName(imp *sitter.Node) *sitter.Node {
	return firstNamedOfNameKind(imp)
}

// typeChildOf returns p's first named child in type position. Used for
// parents that carry the type positionally (receiver_parameter,
// class_literal, method_reference scope).
func typeChildOf(p *sitter.Node) *sitter.Node {
	for i := uint(0); i < p.NamedChildCount(); i++ {
		child := p.NamedChild(i)
		if isTypeRefKind(kindOf(child)) {
			return child
		}
	}
	return nil
}
