package types

import (
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// MetricStatements and MetricNesting name the two rankings a run produces.
const (
	MetricStatements = "statements"
	MetricNesting    = "nesting"
)

// MemberScore holds both metric values for one extracted member.
type MemberScore struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Statements int    `json:"statements"`
	Nesting    int    `json:"nesting"`
}

// ScoredResult is one ranked entry: a member's metric value and where the
// member lives. File is the base name of the source file, Line the 1-based
// line of the member's first token.
type ScoredResult struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Value int    `json:"value"`
}

// RankingRecord is the stored form of a ScoredResult.
type RankingRecord struct {
	ID     *models.RecordID `json:"id,omitempty"`
	Metric string           `json:"metric"`
	Rank   int              `json:"rank"`
	Value  int              `json:"value"`
	File   string           `json:"file"`
	Line   int              `json:"line"`
}

// RankReport contains both rankings of a completed run.
type RankReport struct {
	Statements []ScoredResult
	Nesting    []ScoredResult
}

// Records flattens the report into storable rows, rank starting at 1.
func (r RankReport) Records() []RankingRecord {
	records := make([]RankingRecord, 0, len(r.Statements)+len(r.Nesting))
	for i, res := range r.Statements {
		records = append(records, RankingRecord{
			Metric: MetricStatements,
			Rank:   i + 1,
			Value:  res.Value,
			File:   res.File,
			Line:   res.Line,
		})
	}
	for i, res := range r.Nesting {
		records = append(records, RankingRecord{
			Metric: MetricNesting,
			Rank:   i + 1,
			Value:  res.Value,
			File:   res.File,
			Line:   res.Line,
		})
	}
	return records
}

// RenderTSV formats results as one tab-separated line per entry: the
// metric value, then file:line. No header, no trailing metadata.
func RenderTSV(results []ScoredResult) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%d\t%s:%d\n", r.Value, r.File, r.Line)
	}
	return b.String()
}
