package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharprank/sharprank/analysis"
	"github.com/sharprank/sharprank/syntax"
)

func node(kind syntax.Kind, children ...*syntax.Node) *syntax.Node {
	return &syntax.Node{Kind: kind, File: "test.cs", Line: 1, Children: children}
}

func TestNestingDepth(t *testing.T) {
	tests := []struct {
		name string
		node *syntax.Node
		want int
	}{
		{
			name: "leaf",
			node: node(syntax.KindExpressionStatement),
			want: 0,
		},
		{
			name: "flat statements",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindExpressionStatement),
					node(syntax.KindExpressionStatement),
					node(syntax.KindReturnStatement),
				),
			),
			want: 0,
		},
		{
			name: "if if while chain",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindIfStatement,
						node(syntax.KindBlock,
							node(syntax.KindIfStatement,
								node(syntax.KindBlock,
									node(syntax.KindWhileStatement,
										node(syntax.KindBlock,
											node(syntax.KindExpressionStatement),
										),
									),
								),
							),
						),
					),
				),
			),
			want: 3,
		},
		{
			name: "sibling ifs score one",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindIfStatement, node(syntax.KindBlock)),
					node(syntax.KindIfStatement, node(syntax.KindBlock)),
					node(syntax.KindIfStatement, node(syntax.KindBlock)),
				),
			),
			want: 1,
		},
		{
			name: "lambda adds a level",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindExpressionStatement,
						node(syntax.KindLambdaExpression,
							node(syntax.KindBlock,
								node(syntax.KindForEachStatement,
									node(syntax.KindBlock,
										node(syntax.KindExpressionStatement),
									),
								),
							),
						),
					),
				),
			),
			want: 2,
		},
		{
			name: "using does not add a level",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindUsingStatement,
						node(syntax.KindBlock,
							node(syntax.KindExpressionStatement),
						),
					),
				),
			),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.NestingDepth(tt.node))
		})
	}
}

func TestNestingDepthMonotoneUnderWrapping(t *testing.T) {
	wrapped := node(syntax.KindIfStatement,
		node(syntax.KindBlock,
			node(syntax.KindExpressionStatement),
		),
	)

	for depth := 1; depth <= 6; depth++ {
		root := node(syntax.KindMethod, node(syntax.KindBlock, wrapped))
		assert.Equal(t, depth, analysis.NestingDepth(root))
		wrapped = node(syntax.KindWhileStatement, node(syntax.KindBlock, wrapped))
	}
}

func TestNestingDepthNilNode(t *testing.T) {
	assert.Equal(t, 0, analysis.NestingDepth(nil))
}

func TestStatementCount(t *testing.T) {
	tests := []struct {
		name string
		node *syntax.Node
		want int
	}{
		{
			name: "leaf",
			node: node(syntax.KindExpressionStatement),
			want: 0,
		},
		{
			name: "three simple statements",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindLocalDeclaration),
					node(syntax.KindExpressionStatement),
					node(syntax.KindReturnStatement),
				),
			),
			want: 3,
		},
		{
			name: "control flow is not counted",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindIfStatement,
						node(syntax.KindBlock,
							node(syntax.KindIfStatement,
								node(syntax.KindBlock,
									node(syntax.KindWhileStatement,
										node(syntax.KindBlock,
											node(syntax.KindExpressionStatement),
										),
									),
								),
							),
						),
					),
				),
			),
			want: 1,
		},
		{
			name: "deeply nested statement counts once",
			node: node(syntax.KindMethod,
				node(syntax.KindBlock,
					node(syntax.KindForStatement,
						node(syntax.KindBlock,
							node(syntax.KindExpressionStatement),
							node(syntax.KindExpressionStatement),
						),
					),
					node(syntax.KindReturnStatement),
				),
			),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.StatementCount(tt.node))
		})
	}
}

func TestStatementCountBlocksAreTransparent(t *testing.T) {
	statements := node(syntax.KindBlock,
		node(syntax.KindExpressionStatement),
		node(syntax.KindExpressionStatement),
	)
	plain := node(syntax.KindMethod, statements)
	wrapped := node(syntax.KindMethod,
		node(syntax.KindBlock,
			node(syntax.KindBlock, statements),
		),
	)

	assert.Equal(t, analysis.StatementCount(plain), analysis.StatementCount(wrapped))
}

func TestStatementCountNilNode(t *testing.T) {
	assert.Equal(t, 0, analysis.StatementCount(nil))
}
