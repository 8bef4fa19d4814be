package analysis

import (
	"path/filepath"
	"sort"

	"github.com/sharprank/sharprank/syntax"
	"github.com/sharprank/sharprank/types"
)

// ScoreMembers applies metric to each member and pairs the value with the
// member's location. File is reduced to its base name.
func ScoreMembers(members []*syntax.Node, metric Metric) []types.ScoredResult {
	results := make([]types.ScoredResult, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		results = append(results, types.ScoredResult{
			File:  filepath.Base(m.File),
			Line:  m.Line,
			Value: metric(m),
		})
	}
	return results
}

// Rank sorts results by value descending, then file ascending, then line
// ascending, and truncates to limit. The sort is stable and the comparator
// total, so repeated runs over the same input produce identical output
// regardless of the order candidates were discovered in. Fewer than limit
// results is not an error; a negative limit means no truncation.
func Rank(results []types.ScoredResult, limit int) []types.ScoredResult {
	ranked := make([]types.ScoredResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
