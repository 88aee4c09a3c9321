package jsast

// Node kind names produced by tree-sitter-javascript.
const (
	KindProgram = "program"

	KindIdentifier                   = "identifier"
	KindPropertyIdentifier           = "property_identifier"
	KindShorthandProperty            = "shorthand_property_identifier"
	KindShorthandPropertyPattern     = "shorthand_property_identifier_pattern"
	KindFunctionDeclaration          = "function_declaration"
	KindGeneratorFunctionDeclaration = "generator_function_declaration"
	KindFunctionExpression           = "function_expression"
	// Grammars older than 0.21 name function expressions plain "function".
	KindFunctionExpressionLegacy = "function"
	KindGeneratorFunction        = "generator_function"
	KindArrowFunction            = "arrow_function"
	KindMethodDefinition         = "method_definition"

	KindClassDeclaration = "class_declaration"
	KindClassExpression  = "class"
	KindClassBody        = "class_body"
	KindClassHeritage    = "class_heritage"
	KindFieldDefinition  = "field_definition"

	KindCallExpression       = "call_expression"
	KindArguments            = "arguments"
	KindMemberExpression     = "member_expression"
	KindSubscriptExpression  = "subscript_expression"
	KindAssignmentExpression = "assignment_expression"
	KindVariableDeclarator   = "variable_declarator"
	KindLexicalDeclaration   = "lexical_declaration"
	KindVariableDeclaration  = "variable_declaration"
	KindExpressionStatement  = "expression_statement"
	KindReturnStatement      = "return_statement"
	KindStatementBlock       = "statement_block"
	KindParenthesized        = "parenthesized_expression"
	KindTernaryExpression    = "ternary_expression"
	KindBinaryExpression     = "binary_expression"
	KindSequenceExpression   = "sequence_expression"
	KindFormalParameters     = "formal_parameters"

	KindObject               = "object"
	KindObjectPattern        = "object_pattern"
	KindPair                 = "pair"
	KindPairPattern          = "pair_pattern"
	KindComputedPropertyName = "computed_property_name"
	KindSpreadElement        = "spread_element"

	KindString         = "string"
	KindStringFragment = "string_fragment"
	KindNull           = "null"
	KindThis           = "this"

	KindImportStatement = "import_statement"
	KindImportClause    = "import_clause"
	KindNamedImports    = "named_imports"
	KindImportSpecifier = "import_specifier"
	KindNamespaceImport = "namespace_import"
	KindExportStatement = "export_statement"

	KindJSXElement        = "jsx_element"
	KindJSXSelfClosing    = "jsx_self_closing_element"
	KindJSXFragment       = "jsx_fragment"
	KindJSXOpeningElement = "jsx_opening_element"
	KindJSXExpression     = "jsx_expression"
)

// IsFunctionLike reports whether kind denotes a construct with its own
// parameters and body: function declarations and expressions, generators,
// arrow functions and shorthand methods.
func IsFunctionLike(kind string) bool {
	switch kind {
	case KindFunctionDeclaration, KindGeneratorFunctionDeclaration,
		KindFunctionExpression, KindFunctionExpressionLegacy,
		KindGeneratorFunction, KindArrowFunction, KindMethodDefinition:
		return true
	}
	return false
}

// IsFunctionExpressionKind reports whether kind is a function-valued
// expression (excludes declarations, which are statements).
func IsFunctionExpressionKind(kind string) bool {
	switch kind {
	case KindFunctionExpression, KindFunctionExpressionLegacy,
		KindGeneratorFunction, KindArrowFunction:
		return true
	}
	return false
}

// IsClassKind reports whether kind is a class declaration or expression.
func IsClassKind(kind string) bool {
	return kind == KindClassDeclaration || kind == KindClassExpression
}

// IsJSXLiteral reports whether kind is an element literal: a JSX element,
// self-closing element or fragment.
func IsJSXLiteral(kind string) bool {
	switch kind {
	case KindJSXElement, KindJSXSelfClosing, KindJSXFragment:
		return true
	}
	return false
}
