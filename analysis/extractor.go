package analysis

import "github.com/sharprank/sharprank/syntax"

// ExtractMembers returns the function-like members of the tree rooted at
// root: immediate members of class, struct and record declarations whose
// subtree contains at least one executable statement. The result order
// follows the tree; callers that need a deterministic order rank the
// scored results afterwards.
func ExtractMembers(root *syntax.Node) []*syntax.Node {
	var members []*syntax.Node
	visitTypeDeclarations(root, func(decl *syntax.Node) {
		for _, child := range decl.Children {
			// Member declarations sit inside the type's declaration list.
			if child == nil || child.Kind != syntax.KindDeclarationList {
				continue
			}
			for _, member := range child.Children {
				if member != nil && hasExecutableStatement(member) {
					members = append(members, member)
				}
			}
		}
	})
	return members
}

// visitTypeDeclarations invokes fn for every class-like declaration in the
// tree, nested types included. Interface declarations never match but
// their subtrees are still explored.
func visitTypeDeclarations(n *syntax.Node, fn func(*syntax.Node)) {
	if n == nil {
		return
	}
	if n.Kind.IsTypeDeclaration() {
		fn(n)
	}
	for _, c := range n.Children {
		visitTypeDeclarations(c, fn)
	}
}

// hasExecutableStatement reports whether n's subtree contains a statement
// that is not a block. An empty block has no such descendant, so members
// whose only statement is an empty body do not qualify.
func hasExecutableStatement(n *syntax.Node) bool {
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if c.Kind.IsStatement() && c.Kind != syntax.KindBlock {
			return true
		}
		if hasExecutableStatement(c) {
			return true
		}
	}
	return false
}
