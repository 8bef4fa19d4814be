package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharprank/sharprank/analysis"
	"github.com/sharprank/sharprank/syntax"
)

func methodWithBody(statements ...*syntax.Node) *syntax.Node {
	return node(syntax.KindMethod, node(syntax.KindBlock, statements...))
}

func TestExtractMembers(t *testing.T) {
	tests := []struct {
		name string
		root *syntax.Node
		want int
	}{
		{
			name: "method with statements qualifies",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						methodWithBody(node(syntax.KindReturnStatement)),
					),
				),
			),
			want: 1,
		},
		{
			name: "empty body does not qualify",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						methodWithBody(),
					),
				),
			),
			want: 0,
		},
		{
			name: "nested empty block does not qualify",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						node(syntax.KindMethod,
							node(syntax.KindBlock,
								node(syntax.KindBlock),
							),
						),
					),
				),
			),
			want: 0,
		},
		{
			name: "interface members are excluded",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindInterface,
					node(syntax.KindDeclarationList,
						node(syntax.KindMethod),
					),
				),
			),
			want: 0,
		},
		{
			name: "field without statements is excluded",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						node(syntax.KindField),
						methodWithBody(node(syntax.KindExpressionStatement)),
					),
				),
			),
			want: 1,
		},
		{
			name: "property with accessor body qualifies",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						node(syntax.KindProperty,
							node(syntax.KindAccessorList,
								node(syntax.KindAccessor,
									node(syntax.KindBlock,
										node(syntax.KindReturnStatement),
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
			name: "nested class members are found",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						methodWithBody(node(syntax.KindReturnStatement)),
						node(syntax.KindClass,
							node(syntax.KindDeclarationList,
								methodWithBody(node(syntax.KindReturnStatement)),
							),
						),
					),
				),
			),
			want: 3, // the nested class node itself holds statements too
		},
		{
			name: "struct and record members qualify",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindStruct,
					node(syntax.KindDeclarationList,
						methodWithBody(node(syntax.KindReturnStatement)),
					),
				),
				node(syntax.KindRecord,
					node(syntax.KindDeclarationList,
						methodWithBody(node(syntax.KindReturnStatement)),
					),
				),
			),
			want: 2,
		},
		{
			name: "type with no qualifying members yields nothing",
			root: node(syntax.KindCompilationUnit,
				node(syntax.KindClass,
					node(syntax.KindDeclarationList,
						node(syntax.KindField),
						node(syntax.KindField),
					),
				),
			),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, analysis.ExtractMembers(tt.root), tt.want)
		})
	}
}

func TestExtractMembersNilRoot(t *testing.T) {
	assert.Empty(t, analysis.ExtractMembers(nil))
}
