package naming

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// NameRole distinguishes a name occurrence that declares a new binding from
// one that refers to an existing binding.
type NameRole int

const (
	RoleDeclaration NameRole = iota
	RoleReference
)

func (r NameRole) String() string {
	switch r {
	case RoleDeclaration:
		return "DECLARATION"
	case RoleReference:
		return "REFERENCE"
	}
	return fmt.Sprintf("NameRole(%d)", int(r))
}

// ClassifyRole determines whether a name occurrence is a declaration or a
// reference, from its position in the surrounding tree alone. A fragment of a
// compound name plays the role of the whole name, so classification first
// delegates upward through enclosing scoped identifiers.
//
// The position table is intentionally closed: a parent shape outside it fails
// with ErrUnsupportedConstruct and must be added explicitly.
func (c *Classifier) ClassifyRole(n *sitter.Node) (NameRole, error) {
	if !c.IsName(n) {
		return 0, fmt.Errorf("%w: the given node is not a name", ErrInvalidArgument)
	}
	parent := n.Parent()
	if parent == nil {
		return 0, fmt.Errorf("%w: a root name has no classifiable role", ErrInvalidArgument)
	}

	// A qualifier's role is always the whole compound name's role; the same
	// holds for the trailing identifier.
	switch kindOf(parent) {
	case KindScopedIdentifier, KindScopedTypeIdentifier:
		return c.ClassifyRole(parent)
	}

	switch kindOf(parent) {
	case KindPackageDeclaration:
		if sameNode(firstNamedOfNameKind(parent), n) {
			return RoleDeclaration, nil
		}
	case KindClassDeclaration, KindInterfaceDeclaration,
		KindAnnotationTypeDeclaration, KindEnumDeclaration:
		if sameNode(parent.ChildByFieldName("name"), n) {
			return RoleDeclaration, nil
		}
	case KindMethodDeclaration, KindConstructorDeclaration,
		KindEnumConstant, KindFormalParameter:
		if sameNode(parent.ChildByFieldName("name"), n) {
			return RoleDeclaration, nil
		}
	case KindVariableDeclarator, KindResource:
		if sameNode(parent.ChildByFieldName("name"), n) {
			return RoleDeclaration, nil
		}
	case KindTypeParameter:
		if sameNode(firstNamedOfNameKind(parent), n) {
			return RoleDeclaration, nil
		}
	case KindModuleDeclaration:
		if sameNode(parent.ChildByFieldName("name"), n) || sameNode(firstNamedOfNameKind(parent), n) {
			return RoleDeclaration, nil
		}
	case KindImportDeclaration:
		if sameNode(importedName(parent), n) {
			return RoleReference, nil
		}
	case KindRequiresModuleDirective, KindExportsModuleDirective,
		KindOpensModuleDirective, KindUsesModuleDirective,
		KindProvidesModuleDirective:
		// Module directives only ever mention existing modules, packages,
		// and types.
		return RoleReference, nil
	case KindAnnotation, KindMarkerAnnotation:
		if sameNode(parent.ChildByFieldName("name"), n) {
			return RoleReference, nil
		}
	case KindMethodInvocation:
		if sameNode(parent.ChildByFieldName("name"), n) {
			return RoleReference, nil
		}
	case KindFieldAccess:
		if sameNode(parent.ChildByFieldName("field"), n) {
			return RoleReference, nil
		}
	}

	// A name used in type position is always a reference. Declared names are
	// plain identifiers in the grammar, never type identifiers.
	if isTypeRefKind(kindOf(n)) {
		return RoleReference, nil
	}

	// A name standing in an expression operand slot is a reference. The
	// grammar has no expression wrapper node around identifiers, so the
	// operand slots are enumerated here.
	if c.inExpressionSlot(parent, n) {
		return RoleReference, nil
	}

	return 0, c.unsupported(n, "role")
}

// inExpressionSlot reports whether child occupies an expression operand slot
// of parent. The slot list is closed; positions with mixed slots (declared
// names, types) check the occupied field.
func (c *Classifier) inExpressionSlot(parent, child *sitter.Node) bool {
	switch kindOf(parent) {
	case KindArgumentList, KindArrayInitializer, KindParenthesizedExpression,
		KindExpressionStatement, KindReturnStatement, KindThrowStatement,
		KindBinaryExpression, KindUnaryExpression, KindUpdateExpression,
		KindTernaryExpression:
		return true
	case KindAssignmentExpression:
		return sameNode(parent.ChildByFieldName("left"), child) ||
			sameNode(parent.ChildByFieldName("right"), child)
	case KindArrayAccess:
		return sameNode(parent.ChildByFieldName("array"), child) ||
			sameNode(parent.ChildByFieldName("index"), child)
	case KindCastExpression:
		return sameNode(parent.ChildByFieldName("value"), child)
	case KindInstanceofExpression:
		return sameNode(parent.ChildByFieldName("left"), child)
	case KindFieldAccess:
		return sameNode(parent.ChildByFieldName("object"), child)
	case KindMethodInvocation:
		return sameNode(parent.ChildByFieldName("object"), child)
	case KindObjectCreationExpression:
		// The qualifying scope of a qualified creation precedes the "new"
		// keyword; the created type is the "type" field.
		return sameNode(parent.Child(0), child) &&
			!sameNode(parent.ChildByFieldName("type"), child)
	case KindExplicitConstructorInvocation:
		return sameNode(parent.ChildByFieldName("object"), child)
	case KindElementValuePair:
		return sameNode(parent.ChildByFieldName("value"), child)
	case KindVariableDeclarator:
		return sameNode(parent.ChildByFieldName("value"), child)
	case KindResource:
		return sameNode(parent.ChildByFieldName("value"), child) ||
			(parent.ChildByFieldName("name") == nil && sameNode(parent.NamedChild(0), child))
	case KindEnhancedForStatement:
		return sameNode(parent.ChildByFieldName("value"), child)
	case KindLambdaExpression:
		return sameNode(parent.ChildByFieldName("body"), child)
	case KindMethodReference:
		return sameNode(parent.Child(0), child)
	}
	return false
}
