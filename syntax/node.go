// Package syntax defines the read-only tree model the metrics operate on.
// A Node carries a kind tag from a closed enumeration, its source location,
// and its ordered children. Trees are built once by the parser and never
// mutated afterwards, so they can be shared freely across goroutines.
package syntax

// Kind classifies what a node represents.
type Kind int

const (
	KindUnknown Kind = iota

	// Declarations.
	KindCompilationUnit
	KindNamespace
	KindClass
	KindStruct
	KindRecord
	KindInterface
	KindEnum
	KindDeclarationList
	KindMethod
	KindConstructor
	KindDestructor
	KindProperty
	KindIndexer
	KindOperator
	KindEvent
	KindField
	KindAccessorList
	KindAccessor

	// Statements.
	KindBlock
	KindExpressionStatement
	KindLocalDeclaration
	KindLocalFunction
	KindIfStatement
	KindForStatement
	KindForEachStatement
	KindWhileStatement
	KindDoStatement
	KindSwitchStatement
	KindTryStatement
	KindUsingStatement
	KindLockStatement
	KindFixedStatement
	KindCheckedStatement
	KindUncheckedStatement
	KindUnsafeStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindYieldStatement
	KindGotoStatement
	KindLabeledStatement
	KindEmptyStatement

	// Expressions that open a new function scope.
	KindLambdaExpression
	KindAnonymousMethod
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindCompilationUnit:     "compilation_unit",
	KindNamespace:           "namespace",
	KindClass:               "class",
	KindStruct:              "struct",
	KindRecord:              "record",
	KindInterface:           "interface",
	KindEnum:                "enum",
	KindDeclarationList:     "declaration_list",
	KindMethod:              "method",
	KindConstructor:         "constructor",
	KindDestructor:          "destructor",
	KindProperty:            "property",
	KindIndexer:             "indexer",
	KindOperator:            "operator",
	KindEvent:               "event",
	KindField:               "field",
	KindAccessorList:        "accessor_list",
	KindAccessor:            "accessor",
	KindBlock:               "block",
	KindExpressionStatement: "expression_statement",
	KindLocalDeclaration:    "local_declaration",
	KindLocalFunction:       "local_function",
	KindIfStatement:         "if_statement",
	KindForStatement:        "for_statement",
	KindForEachStatement:    "foreach_statement",
	KindWhileStatement:      "while_statement",
	KindDoStatement:         "do_statement",
	KindSwitchStatement:     "switch_statement",
	KindTryStatement:        "try_statement",
	KindUsingStatement:      "using_statement",
	KindLockStatement:       "lock_statement",
	KindFixedStatement:      "fixed_statement",
	KindCheckedStatement:    "checked_statement",
	KindUncheckedStatement:  "unchecked_statement",
	KindUnsafeStatement:     "unsafe_statement",
	KindReturnStatement:     "return_statement",
	KindBreakStatement:      "break_statement",
	KindContinueStatement:   "continue_statement",
	KindThrowStatement:      "throw_statement",
	KindYieldStatement:      "yield_statement",
	KindGotoStatement:       "goto_statement",
	KindLabeledStatement:    "labeled_statement",
	KindEmptyStatement:      "empty_statement",
	KindLambdaExpression:    "lambda_expression",
	KindAnonymousMethod:     "anonymous_method",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// statementKinds is the full statement vocabulary, block included.
var statementKinds = map[Kind]struct{}{
	KindBlock:               {},
	KindExpressionStatement: {},
	KindLocalDeclaration:    {},
	KindLocalFunction:       {},
	KindIfStatement:         {},
	KindForStatement:        {},
	KindForEachStatement:    {},
	KindWhileStatement:      {},
	KindDoStatement:         {},
	KindSwitchStatement:     {},
	KindTryStatement:        {},
	KindUsingStatement:      {},
	KindLockStatement:       {},
	KindFixedStatement:      {},
	KindCheckedStatement:    {},
	KindUncheckedStatement:  {},
	KindUnsafeStatement:     {},
	KindReturnStatement:     {},
	KindBreakStatement:      {},
	KindContinueStatement:   {},
	KindThrowStatement:      {},
	KindYieldStatement:      {},
	KindGotoStatement:       {},
	KindLabeledStatement:    {},
	KindEmptyStatement:      {},
}

// nestingKinds are the constructs that add one level of nesting depth
// when entered. The set is fixed; it never varies at runtime.
var nestingKinds = map[Kind]struct{}{
	KindAnonymousMethod:    {},
	KindCheckedStatement:   {},
	KindDoStatement:        {},
	KindFixedStatement:     {},
	KindForStatement:       {},
	KindForEachStatement:   {},
	KindIfStatement:        {},
	KindLockStatement:      {},
	KindLambdaExpression:   {},
	KindSwitchStatement:    {},
	KindTryStatement:       {},
	KindUnsafeStatement:    {},
	KindUncheckedStatement: {},
	KindWhileStatement:     {},
}

// IsStatement reports whether k belongs to the statement vocabulary.
func (k Kind) IsStatement() bool {
	_, ok := statementKinds[k]
	return ok
}

// IsTypeDeclaration reports whether k declares a class-like or
// struct-like type. Interfaces are deliberately excluded: their members
// have no executable bodies.
func (k Kind) IsTypeDeclaration() bool {
	return k == KindClass || k == KindStruct || k == KindRecord
}

// AddsNesting reports whether entering a node of kind k costs one level
// of nesting depth.
func (k Kind) AddsNesting() bool {
	_, ok := nestingKinds[k]
	return ok
}

// Countable reports whether a node of kind k is counted by the statement
// metric. Blocks are transparent, and constructs already measured by the
// nesting metric only contribute the statements they enclose.
func (k Kind) Countable() bool {
	return k.IsStatement() && k != KindBlock && !k.AddsNesting()
}

// Node is one element of a parsed file's tree. Nodes are immutable after
// construction and form a strict tree: each child has exactly one parent.
type Node struct {
	Kind     Kind
	File     string
	Line     int // 1-based start line of the node's first token
	Children []*Node
}
