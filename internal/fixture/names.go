package fixture

import "github.com/tsdownlevel/tsdownlevel/internal/ast"

// kindByName maps a fixture's "kind" string onto the ast.Kind it names, the
// JSON-side mirror of internal/ast.Kind's const block.
var kindByName = map[string]ast.Kind{
	"Other":                         ast.KindOther,
	"SourceFile":                    ast.KindSourceFile,
	"ClassDeclaration":              ast.KindClassDeclaration,
	"ClassExpression":                ast.KindClassExpression,
	"EnumDeclaration":                ast.KindEnumDeclaration,
	"ConstEnumDeclaration":           ast.KindConstEnumDeclaration,
	"ModuleDeclaration":              ast.KindModuleDeclaration,
	"FunctionDeclaration":            ast.KindFunctionDeclaration,
	"FunctionExpression":             ast.KindFunctionExpression,
	"ArrowFunction":                  ast.KindArrowFunction,
	"MethodDeclaration":              ast.KindMethodDeclaration,
	"GetAccessor":                    ast.KindGetAccessor,
	"SetAccessor":                    ast.KindSetAccessor,
	"Constructor":                    ast.KindConstructor,
	"VariableStatement":              ast.KindVariableStatement,
	"VariableDeclarationList":        ast.KindVariableDeclarationList,
	"VariableDeclaration":            ast.KindVariableDeclaration,
	"ExpressionStatement":            ast.KindExpressionStatement,
	"IfStatement":                    ast.KindIfStatement,
	"ForStatement":                   ast.KindForStatement,
	"ForInStatement":                 ast.KindForInStatement,
	"ForOfStatement":                 ast.KindForOfStatement,
	"WhileStatement":                 ast.KindWhileStatement,
	"DoStatement":                    ast.KindDoStatement,
	"Block":                          ast.KindBlock,
	"ReturnStatement":                ast.KindReturnStatement,
	"ThrowStatement":                 ast.KindThrowStatement,
	"TryStatement":                   ast.KindTryStatement,
	"SwitchStatement":                ast.KindSwitchStatement,
	"BreakStatement":                 ast.KindBreakStatement,
	"ContinueStatement":              ast.KindContinueStatement,
	"LabeledStatement":               ast.KindLabeledStatement,
	"EmptyStatement":                 ast.KindEmptyStatement,
	"ClassStaticBlockDeclaration":    ast.KindClassStaticBlockDeclaration,
	"CallExpression":                 ast.KindCallExpression,
	"NewExpression":                  ast.KindNewExpression,
	"AwaitExpression":                ast.KindAwaitExpression,
	"YieldExpression":                ast.KindYieldExpression,
	"SpreadElement":                  ast.KindSpreadElement,
	"ArrayLiteralExpression":         ast.KindArrayLiteralExpression,
	"ObjectLiteralExpression":        ast.KindObjectLiteralExpression,
	"TemplateExpression":             ast.KindTemplateExpression,
	"TaggedTemplateExpression":       ast.KindTaggedTemplateExpression,
	"BinaryExpression":               ast.KindBinaryExpression,
	"ConditionalExpression":          ast.KindConditionalExpression,
	"PropertyAccessExpression":       ast.KindPropertyAccessExpression,
	"ElementAccessExpression":        ast.KindElementAccessExpression,
	"ThisExpression":                 ast.KindThisExpression,
	"SuperExpression":                ast.KindSuperExpression,
	"SuperCall":                      ast.KindSuperCall,
	"Identifier":                     ast.KindIdentifier,
	"PrivateIdentifier":              ast.KindPrivateIdentifier,
	"ParenthesizedExpression":        ast.KindParenthesizedExpression,
	"ObjectBindingPattern":           ast.KindObjectBindingPattern,
	"ArrayBindingPattern":            ast.KindArrayBindingPattern,
	"BindingElement":                 ast.KindBindingElement,
	"InterfaceDeclaration":           ast.KindInterfaceDeclaration,
	"TypeAliasDeclaration":           ast.KindTypeAliasDeclaration,
	"AmbientDeclaration":             ast.KindAmbientDeclaration,
	"ImportDeclaration":              ast.KindImportDeclaration,
	"ImportEqualsDeclaration":        ast.KindImportEqualsDeclaration,
	"ExportDeclaration":              ast.KindExportDeclaration,
	"ExportAssignment":               ast.KindExportAssignment,
	"NamedImports":                   ast.KindNamedImports,
	"NamespaceImport":                ast.KindNamespaceImport,
	"NamedExports":                   ast.KindNamedExports,
	"NumericLiteral":                 ast.KindNumericLiteral,
	"StringLiteral":                  ast.KindStringLiteral,
	"BooleanLiteral":                 ast.KindBooleanLiteral,
	"NullLiteral":                    ast.KindNullLiteral,
	"Decorator":                      ast.KindDecorator,
}

// nameByKind is kindByName's inverse, used by the generator to serialize a
// Kind back to its fixture string.
var nameByKind = func() map[ast.Kind]string {
	m := make(map[ast.Kind]string, len(kindByName))
	for name, kind := range kindByName {
		m[kind] = name
	}
	return m
}()

var memberKindByName = map[string]ast.ClassMemberKind{
	"method":       ast.MemberMethod,
	"get":          ast.MemberGetAccessor,
	"set":          ast.MemberSetAccessor,
	"field":        ast.MemberField,
	"staticBlock":  ast.MemberStaticBlock,
	"constructor":  ast.MemberConstructor,
}

var memberNameByKind = map[ast.ClassMemberKind]string{
	ast.MemberMethod:      "method",
	ast.MemberGetAccessor: "get",
	ast.MemberSetAccessor: "set",
	ast.MemberField:       "field",
	ast.MemberStaticBlock: "staticBlock",
	ast.MemberConstructor: "constructor",
}

var enumValueKindByName = map[string]ast.EnumValueKind{
	"auto":     ast.EnumValueAuto,
	"numeric":  ast.EnumValueNumeric,
	"string":   ast.EnumValueString,
	"computed": ast.EnumValueComputed,
}

var enumValueNameByKind = map[ast.EnumValueKind]string{
	ast.EnumValueAuto:     "auto",
	ast.EnumValueNumeric:  "numeric",
	ast.EnumValueString:   "string",
	ast.EnumValueComputed: "computed",
}
