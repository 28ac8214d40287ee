package naming

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Kind is the closed set of tree-sitter-java node kinds the classifier models.
// Anything the grammar can produce that is not listed here maps to KindUnknown
// and classifies as an unsupported construct.
type Kind int

const (
	KindUnknown Kind = iota

	// Name-bearing kinds.
	KindIdentifier
	KindScopedIdentifier
	KindTypeIdentifier
	KindScopedTypeIdentifier
	KindGenericType
	KindFieldAccess

	// Declarations.
	KindPackageDeclaration
	KindImportDeclaration
	KindClassDeclaration
	KindInterfaceDeclaration
	KindAnnotationTypeDeclaration
	KindAnnotationTypeElementDeclaration
	KindMethodDeclaration
	KindConstructorDeclaration
	KindFieldDeclaration
	KindLocalVariableDeclaration
	KindVariableDeclarator
	KindFormalParameter
	KindReceiverParameter
	KindTypeParameter
	KindEnumDeclaration
	KindEnumConstant

	// Module directives.
	KindModuleDeclaration
	KindRequiresModuleDirective
	KindExportsModuleDirective
	KindOpensModuleDirective
	KindUsesModuleDirective
	KindProvidesModuleDirective

	// Expressions.
	KindMethodInvocation
	KindObjectCreationExpression
	KindArrayCreationExpression
	KindArrayAccess
	KindArrayInitializer
	KindCastExpression
	KindInstanceofExpression
	KindAssignmentExpression
	KindBinaryExpression
	KindUnaryExpression
	KindUpdateExpression
	KindTernaryExpression
	KindLambdaExpression
	KindMethodReference
	KindClassLiteral
	KindParenthesizedExpression
	KindArgumentList
	KindAnnotation
	KindMarkerAnnotation
	KindElementValuePair
	KindExplicitConstructorInvocation
	KindThis
	KindSuper

	// Clause and statement shells the rules look through.
	KindSuperclass
	KindSuperInterfaces
	KindExtendsInterfaces
	KindTypeList
	KindTypeArguments
	KindThrows
	KindResource
	KindExpressionStatement
	KindReturnStatement
	KindThrowStatement
	KindEnhancedForStatement
	KindAsterisk
)

var kindNames = map[string]Kind{
	"identifier":                           KindIdentifier,
	"scoped_identifier":                    KindScopedIdentifier,
	"type_identifier":                      KindTypeIdentifier,
	"scoped_type_identifier":               KindScopedTypeIdentifier,
	"generic_type":                         KindGenericType,
	"field_access":                         KindFieldAccess,
	"package_declaration":                  KindPackageDeclaration,
	"import_declaration":                   KindImportDeclaration,
	"class_declaration":                    KindClassDeclaration,
	"interface_declaration":                KindInterfaceDeclaration,
	"annotation_type_declaration":          KindAnnotationTypeDeclaration,
	"annotation_type_element_declaration":  KindAnnotationTypeElementDeclaration,
	"method_declaration":                   KindMethodDeclaration,
	"constructor_declaration":              KindConstructorDeclaration,
	"field_declaration":                    KindFieldDeclaration,
	"local_variable_declaration":           KindLocalVariableDeclaration,
	"variable_declarator":                  KindVariableDeclarator,
	"formal_parameter":                     KindFormalParameter,
	"receiver_parameter":                   KindReceiverParameter,
	"type_parameter":                       KindTypeParameter,
	"enum_declaration":                     KindEnumDeclaration,
	"enum_constant":                        KindEnumConstant,
	"module_declaration":                   KindModuleDeclaration,
	"requires_module_directive":            KindRequiresModuleDirective,
	"exports_module_directive":             KindExportsModuleDirective,
	"opens_module_directive":               KindOpensModuleDirective,
	"uses_module_directive":                KindUsesModuleDirective,
	"provides_module_directive":            KindProvidesModuleDirective,
	"method_invocation":                    KindMethodInvocation,
	"object_creation_expression":           KindObjectCreationExpression,
	"array_creation_expression":            KindArrayCreationExpression,
	"array_access":                         KindArrayAccess,
	"array_initializer":                    KindArrayInitializer,
	"cast_expression":                      KindCastExpression,
	"instanceof_expression":                KindInstanceofExpression,
	"assignment_expression":                KindAssignmentExpression,
	"binary_expression":                    KindBinaryExpression,
	"unary_expression":                     KindUnaryExpression,
	"update_expression":                    KindUpdateExpression,
	"ternary_expression":                   KindTernaryExpression,
	"lambda_expression":                    KindLambdaExpression,
	"method_reference":                     KindMethodReference,
	"class_literal":                        KindClassLiteral,
	"parenthesized_expression":             KindParenthesizedExpression,
	"argument_list":                        KindArgumentList,
	"annotation":                           KindAnnotation,
	"marker_annotation":                    KindMarkerAnnotation,
	"element_value_pair":                   KindElementValuePair,
	"explicit_constructor_invocation":      KindExplicitConstructorInvocation,
	"this":                                 KindThis,
	"super":                                KindSuper,
	"superclass":                           KindSuperclass,
	"super_interfaces":                     KindSuperInterfaces,
	"extends_interfaces":                   KindExtendsInterfaces,
	"type_list":                            KindTypeList,
	"type_arguments":                       KindTypeArguments,
	"throws":                               KindThrows,
	"resource":                             KindResource,
	"expression_statement":                 KindExpressionStatement,
	"return_statement":                     KindReturnStatement,
	"throw_statement":                      KindThrowStatement,
	"enhanced_for_statement":               KindEnhancedForStatement,
	"asterisk":                             KindAsterisk,
}

func kindOf(n *sitter.Node) Kind {
	if n == nil {
		return KindUnknown
	}
	return kindNames[n.Kind()]
}

// isNameKind reports whether k is one of the kinds that can denote a name on
// its own. field_access additionally requires a name-shaped object, which
// IsName checks recursively.
func isNameKind(k Kind) bool {
	switch k {
	case KindIdentifier, KindScopedIdentifier, KindTypeIdentifier,
		KindScopedTypeIdentifier, KindGenericType, KindFieldAccess:
		return true
	}
	return false
}

// isTypeRefKind reports whether k denotes a name used in type position.
func isTypeRefKind(k Kind) bool {
	switch k {
	case KindTypeIdentifier, KindScopedTypeIdentifier, KindGenericType:
		return true
	}
	return false
}
