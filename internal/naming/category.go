package naming

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// NameCategory is the syntactic kind of a referencing name. PackageOrType
// and Ambiguous cannot be resolved by syntax alone and need phase-2
// reclassification against the enclosing scope's declared symbols.
type NameCategory int

const (
	CategoryTypeName NameCategory = iota
	CategoryExpressionName
	CategoryMethodName
	CategoryPackageName
	CategoryModuleName
	CategoryPackageOrTypeName
	CategoryAmbiguousName
)

func (c NameCategory) String() string {
	switch c {
	case CategoryTypeName:
		return "TYPE_NAME"
	case CategoryExpressionName:
		return "EXPRESSION_NAME"
	case CategoryMethodName:
		return "METHOD_NAME"
	case CategoryPackageName:
		return "PACKAGE_NAME"
	case CategoryModuleName:
		return "MODULE_NAME"
	case CategoryPackageOrTypeName:
		return "PACKAGE_OR_TYPE_NAME"
	case CategoryAmbiguousName:
		return "AMBIGUOUS_NAME"
	}
	return fmt.Sprintf("NameCategory(%d)", int(c))
}

// NeedsDisambiguation reports whether the category requires scope-aware
// semantic lookup to resolve further.
func (c NameCategory) NeedsDisambiguation() bool {
	return c == CategoryPackageOrTypeName || c == CategoryAmbiguousName
}

// Resolver reclassifies a contextually ambiguous name to a package, type, or
// expression name by consulting the declared symbols in scope. Callers with a
// symbol table supply one; this package does not implement it.
type Resolver interface {
	Reclassify(n *sitter.Node, ambiguous NameCategory) (NameCategory, error)
}

// ClassifyReference determines the category of a name used as a reference.
// Context first places the name in one of the seven syntactic categories;
// a result of PACKAGE_OR_TYPE_NAME or AMBIGUOUS_NAME is then reclassified
// through the Resolver. A successful result is never one of the two
// needs-disambiguation categories.
func (c *Classifier) ClassifyReference(n *sitter.Node) (NameCategory, error) {
	role, err := c.ClassifyRole(n)
	if err != nil {
		return 0, err
	}
	if role != RoleReference {
		return 0, fmt.Errorf("%w: only names used as references have a category", ErrInvalidArgument)
	}

	first, err := c.SyntacticCategory(n)
	if err != nil {
		return 0, err
	}
	if !first.NeedsDisambiguation() {
		return first, nil
	}
	if c.Resolver == nil {
		return 0, fmt.Errorf("%w: %s requires semantic reclassification and no resolver is set",
			ErrNotImplemented, first)
	}
	second, err := c.Resolver.Reclassify(n, first)
	if err != nil {
		return 0, err
	}
	if second.NeedsDisambiguation() {
		return 0, fmt.Errorf("%w: resolver returned %s, which still needs disambiguation",
			ErrInvalidArgument, second)
	}
	return second, nil
}

// SyntacticCategory classifies a reference by context alone. Most callers
// want ClassifyReference, which also runs phase-2 reclassification.
//
// The predicate families run in a fixed priority order; some positions are
// structurally ambiguous between families and the order picks one
// deterministically (a type reference is checked before the expression rules
// that could also match a bare identifier).
func (c *Classifier) SyntacticCategory(n *sitter.Node) (NameCategory, error) {
	// A name wrapped by an outer container rendering the same dotted text is
	// classified by the full name's position, not the wrapper's interior.
	if parent := n.Parent(); parent != nil && c.IsName(parent) && c.rendersAs(n, parent) {
		return c.SyntacticCategory(parent)
	}

	switch {
	case c.isTypeNamePosition(n):
		return CategoryTypeName, nil
	case c.isExpressionNamePosition(n):
		return CategoryExpressionName, nil
	case c.isMethodNamePosition(n):
		return CategoryMethodName, nil
	case c.isPackageOrTypeNamePosition(n):
		return CategoryPackageOrTypeName, nil
	case c.isAmbiguousNamePosition(n):
		return CategoryAmbiguousName, nil
	case c.isModuleNamePosition(n):
		return CategoryModuleName, nil
	case c.isPackageNamePosition(n):
		return CategoryPackageName, nil
	}

	// Variant-based defaults for names whose position no family enumerates.
	switch kindOf(n) {
	case KindIdentifier:
		// A bare identifier in expression position. Fragments of a larger
		// name are excluded: their category is not defined on their own.
		if !c.IsName(n.Parent()) {
			return CategoryExpressionName, nil
		}
	case KindFieldAccess:
		return CategoryExpressionName, nil
	case KindTypeIdentifier, KindScopedTypeIdentifier, KindGenericType:
		return CategoryTypeName, nil
	}
	switch kindOf(n.Parent()) {
	case KindScopedTypeIdentifier, KindGenericType:
		return CategoryTypeName, nil
	case KindFieldAccess:
		return CategoryExpressionName, nil
	}

	return 0, c.unsupported(n, "category")
}

// isTypeNamePosition enumerates the contexts in which a name is syntactically
// a TypeName: the module, import, and declaration positions of JLS 6.5.1
// plus the contexts where types are used.
func (c *Classifier) isTypeNamePosition(n *sitter.Node) bool {
	// uses and provides directives in a module declaration.
	if when(n, KindUsesModuleDirective, func(p, ch *sitter.Node) bool {
		return sameNode(p.ChildByFieldName("type"), ch) || sameNode(firstNamedOfNameKind(p), ch)
	}) {
		return true
	}
	if when(n, KindProvidesModuleDirective, func(p, ch *sitter.Node) bool {
		if provided := p.ChildByFieldName("provided"); provided != nil {
			return sameNode(provided, ch)
		}
		return sameNode(firstNamedOfNameKind(p), ch)
	}) {
		return true
	}

	// A single-type-import declaration.
	if when(n, KindImportDeclaration, func(p, ch *sitter.Node) bool {
		return !importIsStatic(p) && !importOnDemand(p) && sameNode(importedName(p), ch)
	}) {
		return true
	}

	// Left of the "." in a single-static-import declaration, and the
	// imported name itself.
	if when(n, KindScopedIdentifier, func(p, ch *sitter.Node) bool {
		return sameNode(scopePartOf(p), ch) && when(p, KindImportDeclaration, func(imp, whole *sitter.Node) bool {
			return importIsStatic(imp) && !importOnDemand(imp) && sameNode(importedName(imp), whole)
		})
	}) {
		return true
	}
	if when(n, KindImportDeclaration, func(p, ch *sitter.Node) bool {
		return importIsStatic(p) && !importOnDemand(p) && sameNode(importedName(p), ch)
	}) {
		return true
	}

	// A static-import-on-demand declaration.
	if when(n, KindImportDeclaration, func(p, ch *sitter.Node) bool {
		return importIsStatic(p) && importOnDemand(p) && sameNode(importedName(p), ch)
	}) {
		return true
	}

	// Left of the "(" in a constructor declaration.
	if when(n, KindConstructorDeclaration, isField("name")) {
		return true
	}

	// After the "@" in an annotation.
	if when(n, KindAnnotation, isField("name")) || when(n, KindMarkerAnnotation, isField("name")) {
		return true
	}

	// Left of ".class" in a class literal.
	if when(n, KindClassLiteral, func(p, ch *sitter.Node) bool {
		return sameNode(p.NamedChild(0), ch)
	}) {
		return true
	}

	// Left of ".this" in a qualified this, and left of ".super" in a
	// qualified superclass field access.
	if when(n, KindFieldAccess, func(p, ch *sitter.Node) bool {
		if !sameNode(p.ChildByFieldName("object"), ch) {
			return false
		}
		return kindOf(p.ChildByFieldName("field")) == KindThis || hasChildOfKind(p, "super")
	}) {
		return true
	}

	// An extends or implements clause of a class or interface declaration.
	if when(n, KindSuperclass, anyChild) {
		return true
	}
	if when(n, KindTypeList, func(p, ch *sitter.Node) bool {
		switch kindOf(p.Parent()) {
		case KindSuperInterfaces, KindExtendsInterfaces:
			return true
		}
		return false
	}) {
		return true
	}

	// The return type of a method, including an annotation type element.
	if when(n, KindMethodDeclaration, isField("type")) {
		return true
	}
	if when(n, KindAnnotationTypeElementDeclaration, isField("type")) {
		return true
	}

	// The throws clause of a method or constructor.
	if when(n, KindThrows, anyChild) {
		return true
	}

	// The type in a field or local variable declaration.
	if when(n, KindFieldDeclaration, isField("type")) {
		return true
	}
	if when(n, KindLocalVariableDeclaration, isField("type")) {
		return true
	}

	// The type of a formal or receiver parameter, or a resource declaration.
	if when(n, KindFormalParameter, isField("type")) {
		return true
	}
	if when(n, KindReceiverParameter, func(p, ch *sitter.Node) bool {
		return sameNode(typeChildOf(p), ch)
	}) {
		return true
	}
	if when(n, KindResource, isField("type")) {
		return true
	}

	// An explicit type argument list.
	if when(n, KindTypeArguments, anyChild) {
		return true
	}

	// The class type of an unqualified class instance creation.
	if when(n, KindObjectCreationExpression, isField("type")) {
		return true
	}

	// The element type of an array creation.
	if when(n, KindArrayCreationExpression, isField("type")) {
		return true
	}

	// The type in a cast operator.
	if when(n, KindCastExpression, isField("type")) {
		return true
	}

	// The type following the instanceof operator.
	if when(n, KindInstanceofExpression, func(p, ch *sitter.Node) bool {
		if sameNode(p.ChildByFieldName("right"), ch) {
			return true
		}
		return p.ChildByFieldName("right") == nil && sameNode(typeChildOf(p), ch)
	}) {
		return true
	}

	// The reference type searched by a method reference expression.
	if when(n, KindMethodReference, func(p, ch *sitter.Node) bool {
		return sameNode(p.Child(0), ch) && isTypeRefKind(kindOf(ch))
	}) {
		return true
	}

	return false
}

// isExpressionNamePosition enumerates the contexts in which a name is
// syntactically an ExpressionName.
func (c *Classifier) isExpressionNamePosition(n *sitter.Node) bool {
	// The qualifying expression of a qualified superclass constructor
	// invocation.
	if when(n, KindExplicitConstructorInvocation, isField("object")) {
		return true
	}

	// The qualifying expression of a qualified class instance creation.
	if when(n, KindObjectCreationExpression, func(p, ch *sitter.Node) bool {
		return sameNode(p.Child(0), ch) && !sameNode(p.ChildByFieldName("type"), ch)
	}) {
		return true
	}

	// The array reference expression of an array access.
	if when(n, KindArrayAccess, isField("array")) {
		return true
	}

	// The operand of a postfix increment or decrement.
	if when(n, KindUpdateExpression, func(p, ch *sitter.Node) bool {
		return sameNode(p.Child(0), ch)
	}) {
		return true
	}

	// The left-hand operand of an assignment.
	if when(n, KindAssignmentExpression, isField("left")) {
		return true
	}

	// A variable access in a try-with-resources statement: either the bare
	// resource name or the initializer of a resource declaration.
	if when(n, KindResource, func(p, ch *sitter.Node) bool {
		if sameNode(p.ChildByFieldName("value"), ch) {
			return true
		}
		return p.ChildByFieldName("name") == nil && sameNode(p.NamedChild(0), ch)
	}) {
		return true
	}

	return false
}

// isMethodNamePosition: before the "(" in a method invocation.
func (c *Classifier) isMethodNamePosition(n *sitter.Node) bool {
	return when(n, KindMethodInvocation, isField("name"))
}

// isPackageOrTypeNamePosition enumerates the PackageOrTypeName contexts.
func (c *Classifier) isPackageOrTypeNamePosition(n *sitter.Node) bool {
	// Left of the "." in a qualified TypeName.
	if when(n, KindScopedIdentifier, func(p, ch *sitter.Node) bool {
		return sameNode(scopePartOf(p), ch) && c.isTypeNamePosition(p)
	}) {
		return true
	}
	if when(n, KindScopedTypeIdentifier, func(p, ch *sitter.Node) bool {
		return sameNode(scopePartOf(p), ch)
	}) {
		return true
	}

	// A type-import-on-demand declaration.
	if when(n, KindImportDeclaration, func(p, ch *sitter.Node) bool {
		return !importIsStatic(p) && importOnDemand(p) && sameNode(importedName(p), ch)
	}) {
		return true
	}

	return false
}

// isAmbiguousNamePosition enumerates the implemented AmbiguousName contexts.
// Three further positions the governing rules recognize are deliberately not
// modeled: the qualifier of a qualified ambiguous name, the default value
// clause of an annotation type element, and an expression left of "::" in a
// method reference. They fall through to the defaults or fail as unsupported.
func (c *Classifier) isAmbiguousNamePosition(n *sitter.Node) bool {
	// Left of the "." in a qualified expression name.
	if when(n, KindFieldAccess, isField("object")) {
		return true
	}

	// Left of the rightmost "." before the "(" in a method invocation.
	if when(n, KindMethodInvocation, isField("object")) {
		return true
	}

	// Right of the "=" in an annotation element-value pair.
	if when(n, KindElementValuePair, isField("value")) {
		return true
	}

	return false
}

// isModuleNamePosition enumerates the ModuleName contexts.
func (c *Classifier) isModuleNamePosition(n *sitter.Node) bool {
	// The target of a requires directive.
	if when(n, KindRequiresModuleDirective, func(p, ch *sitter.Node) bool {
		return sameNode(firstNamedOfNameKind(p), ch)
	}) {
		return true
	}

	// Right of "to" in an exports or opens directive.
	for _, k := range []Kind{KindExportsModuleDirective, KindOpensModuleDirective} {
		if when(n, k, func(p, ch *sitter.Node) bool {
			return !sameNode(firstNamedOfNameKind(p), ch)
		}) {
			return true
		}
	}

	return false
}

// isPackageNamePosition enumerates the PackageName contexts.
func (c *Classifier) isPackageNamePosition(n *sitter.Node) bool {
	// The package a module exports or opens.
	for _, k := range []Kind{KindExportsModuleDirective, KindOpensModuleDirective} {
		if when(n, k, func(p, ch *sitter.Node) bool {
			return sameNode(firstNamedOfNameKind(p), ch)
		}) {
			return true
		}
	}

	// Left of the "." in a qualified PackageName.
	if when(n, KindScopedIdentifier, func(p, ch *sitter.Node) bool {
		return sameNode(scopePartOf(p), ch) && c.isPackageNamePosition(p)
	}) {
		return true
	}

	return false
}
