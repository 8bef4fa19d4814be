// Package parser turns C# source files into syntax trees.
package parser

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/sharprank/sharprank/syntax"
)

// Parser parses C# source into the read-only tree model of the syntax
// package. The zero value is not usable; call NewParser.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*syntax.Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.Parse(ctx, content, path)
}

// Parse parses content, attributing locations to path. A fresh
// tree-sitter parser is created per call: sitter.Parser is not safe for
// concurrent use, and callers parse many files in parallel. The
// tree-sitter tree is released before returning; the converted tree holds
// no cgo references.
func (p *Parser) Parse(ctx context.Context, content []byte, path string) (*syntax.Node, error) {
	sp := sitter.NewParser()
	sp.SetLanguage(csharp.GetLanguage())

	tree, err := sp.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("syntax errors in %s", path)
	}

	return convert(root, path), nil
}

// convert maps a tree-sitter node and its named descendants onto syntax
// nodes. Unrecognized node types become KindUnknown; their children are
// still converted so nothing below them is lost.
func convert(n *sitter.Node, path string) *syntax.Node {
	node := &syntax.Node{
		Kind: kindOf(n),
		File: path,
		Line: int(n.StartPoint().Row) + 1,
	}
	count := int(n.NamedChildCount())
	if count > 0 {
		node.Children = make([]*syntax.Node, 0, count)
	}
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		node.Children = append(node.Children, convert(child, path))
	}
	return node
}

// kinds maps tree-sitter-c-sharp node types onto the closed kind
// vocabulary.
var kinds = map[string]syntax.Kind{
	"compilation_unit":                  syntax.KindCompilationUnit,
	"namespace_declaration":             syntax.KindNamespace,
	"file_scoped_namespace_declaration": syntax.KindNamespace,
	"class_declaration":                 syntax.KindClass,
	"struct_declaration":                syntax.KindStruct,
	"record_declaration":                syntax.KindRecord,
	"interface_declaration":             syntax.KindInterface,
	"enum_declaration":                  syntax.KindEnum,
	"declaration_list":                  syntax.KindDeclarationList,
	"method_declaration":                syntax.KindMethod,
	"constructor_declaration":           syntax.KindConstructor,
	"destructor_declaration":            syntax.KindDestructor,
	"property_declaration":              syntax.KindProperty,
	"indexer_declaration":               syntax.KindIndexer,
	"operator_declaration":              syntax.KindOperator,
	"conversion_operator_declaration":   syntax.KindOperator,
	"event_declaration":                 syntax.KindEvent,
	"event_field_declaration":           syntax.KindEvent,
	"field_declaration":                 syntax.KindField,
	"accessor_list":                     syntax.KindAccessorList,
	"accessor_declaration":              syntax.KindAccessor,
	"block":                             syntax.KindBlock,
	"expression_statement":              syntax.KindExpressionStatement,
	"local_declaration_statement":       syntax.KindLocalDeclaration,
	"local_function_statement":          syntax.KindLocalFunction,
	"if_statement":                      syntax.KindIfStatement,
	"for_statement":                     syntax.KindForStatement,
	"foreach_statement":                 syntax.KindForEachStatement,
	"while_statement":                   syntax.KindWhileStatement,
	"do_statement":                      syntax.KindDoStatement,
	"switch_statement":                  syntax.KindSwitchStatement,
	"try_statement":                     syntax.KindTryStatement,
	"using_statement":                   syntax.KindUsingStatement,
	"lock_statement":                    syntax.KindLockStatement,
	"fixed_statement":                   syntax.KindFixedStatement,
	"unsafe_statement":                  syntax.KindUnsafeStatement,
	"return_statement":                  syntax.KindReturnStatement,
	"break_statement":                   syntax.KindBreakStatement,
	"continue_statement":                syntax.KindContinueStatement,
	"throw_statement":                   syntax.KindThrowStatement,
	"yield_statement":                   syntax.KindYieldStatement,
	"goto_statement":                    syntax.KindGotoStatement,
	"labeled_statement":                 syntax.KindLabeledStatement,
	"empty_statement":                   syntax.KindEmptyStatement,
	"lambda_expression":                 syntax.KindLambdaExpression,
	"anonymous_method_expression":       syntax.KindAnonymousMethod,
}

func kindOf(n *sitter.Node) syntax.Kind {
	t := n.Type()
	// The grammar uses a single node type for checked and unchecked
	// blocks; the leading keyword token tells them apart.
	if t == "checked_statement" {
		if first := n.Child(0); first != nil && first.Type() == "unchecked" {
			return syntax.KindUncheckedStatement
		}
		return syntax.KindCheckedStatement
	}
	if k, ok := kinds[t]; ok {
		return k
	}
	return syntax.KindUnknown
}
