// Package sharprank ranks the members of a C# codebase by two complexity
// metrics: total statement count and maximum control-flow nesting depth.
package sharprank

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/sharprank/sharprank/analysis"
	"github.com/sharprank/sharprank/db"
	"github.com/sharprank/sharprank/types"
)

// DefaultLimit is the number of entries each ranking keeps.
const DefaultLimit = analysis.DefaultLimit

// Analyzer is the high-level entry point wrapping analysis and storage.
type Analyzer struct {
	inner *analysis.Analyzer
}

// NewAnalyzer creates an Analyzer that only ranks; nothing is stored.
func NewAnalyzer(logger hclog.Logger) *Analyzer {
	return &Analyzer{inner: analysis.NewAnalyzer(logger)}
}

// NewStoringAnalyzer creates an Analyzer that also persists each report
// to SurrealDB.
func NewStoringAnalyzer(config db.Config, logger hclog.Logger) (*Analyzer, error) {
	sdb, err := db.NewSurrealDB(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	a := analysis.NewAnalyzer(logger)
	a.DB = sdb
	return &Analyzer{inner: a}, nil
}

// SetInclude narrows the scanned file set to paths matching the given
// doublestar patterns, relative to the scan root.
func (a *Analyzer) SetInclude(patterns []string) {
	a.inner.Include = patterns
}

// Initialize prepares the storage backend, when one is configured.
func (a *Analyzer) Initialize(ctx context.Context) error {
	return a.inner.Initialize(ctx)
}

// RankByStatementCount returns the top limit members under root ordered
// by statement count, ties broken by file name then line.
func (a *Analyzer) RankByStatementCount(ctx context.Context, root string, limit int) ([]types.ScoredResult, error) {
	return a.inner.RankByStatementCount(ctx, root, limit)
}

// RankByNestingDepth returns the top limit members under root ordered by
// nesting depth, ties broken by file name then line.
func (a *Analyzer) RankByNestingDepth(ctx context.Context, root string, limit int) ([]types.ScoredResult, error) {
	return a.inner.RankByNestingDepth(ctx, root, limit)
}

// AnalyzeDirectory produces both rankings in one scan and stores them
// when a storage backend is configured.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, root string, limit int) (types.RankReport, error) {
	return a.inner.AnalyzeDirectory(ctx, root, limit)
}
