package analysis

import "github.com/sharprank/sharprank/syntax"

// Metric is a pure function from a syntax node to a non-negative score.
type Metric func(*syntax.Node) int

// NestingDepth returns the maximum depth of nested control-flow
// constructs anywhere within n's subtree. The increment is attributed to
// the child's kind: entering a nesting construct costs one level at the
// point its node is encountered as a child. Ten sibling ifs score 1, a
// chain of ten nested ifs scores 10.
func NestingDepth(n *syntax.Node) int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		d := NestingDepth(c)
		if c.Kind.AddsNesting() {
			d++
		}
		if d > max {
			max = d
		}
	}
	return max
}

// StatementCount returns the number of countable statement descendants in
// n's subtree, independent of nesting depth. Counted statements are still
// descended into, since statements can enclose further statements.
func StatementCount(n *syntax.Node) int {
	if n == nil {
		return 0
	}
	total := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if c.Kind.Countable() {
			total++
		}
		total += StatementCount(c)
	}
	return total
}
