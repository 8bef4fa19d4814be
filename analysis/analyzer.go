package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/sharprank/sharprank/db"
	"github.com/sharprank/sharprank/parser"
	"github.com/sharprank/sharprank/types"
)

// DefaultLimit is the number of entries each ranking keeps.
const DefaultLimit = 100

const sourceExtension = ".cs"

// Analyzer scans a directory tree for C# sources and ranks their members
// by statement count and nesting depth.
type Analyzer struct {
	DB      db.DB // optional; rankings are stored only when set
	Parser  *parser.Parser
	Cache   *FileCache
	Logger  hclog.Logger
	Include []string // doublestar patterns relative to the scanned root
}

// NewAnalyzer creates an Analyzer without a storage backend.
func NewAnalyzer(logger hclog.Logger) *Analyzer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Analyzer{
		Parser: parser.NewParser(),
		Cache:  NewFileCache(10000),
		Logger: logger,
	}
}

// Initialize sets up the storage backend, when one is configured.
func (a *Analyzer) Initialize(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Initialize(ctx)
}

// AnalyzeDirectory ranks dir's members and stores the report.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, dir string, limit int) (types.RankReport, error) {
	report, err := a.GetAnalysis(ctx, dir, limit)
	if err != nil {
		return types.RankReport{}, fmt.Errorf("failed to analyze directory: %w", err)
	}

	if a.DB != nil {
		if err := a.DB.StoreReport(ctx, report); err != nil {
			return types.RankReport{}, fmt.Errorf("failed to store analysis results: %w", err)
		}
	}

	return report, nil
}

// GetAnalysis performs the scan without storing results. Files are parsed
// and scored concurrently; a file that fails to parse contributes nothing
// and the run continues. Only a failure to walk dir aborts the run.
func (a *Analyzer) GetAnalysis(ctx context.Context, dir string, limit int) (types.RankReport, error) {
	filePaths, err := a.collectFiles(dir)
	if err != nil {
		return types.RankReport{}, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	resultCh := make(chan []types.MemberScore, len(filePaths))

	for _, path := range filePaths {
		path := path
		g.Go(func() error {
			scores, err := a.scoreFile(ctx, path)
			if err != nil {
				// Parse failures are local to the file.
				a.Logger.Warn("skipping file", "path", path, "error", err)
				return nil
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case resultCh <- scores:
				return nil
			}
		})
	}

	go func() {
		g.Wait()
		close(resultCh)
	}()

	var all []types.MemberScore
	for scores := range resultCh {
		all = append(all, scores...)
	}

	if err := g.Wait(); err != nil {
		return types.RankReport{}, err
	}

	return buildReport(all, limit), nil
}

// RankByStatementCount returns the top members of dir by statement count.
func (a *Analyzer) RankByStatementCount(ctx context.Context, dir string, limit int) ([]types.ScoredResult, error) {
	report, err := a.GetAnalysis(ctx, dir, limit)
	if err != nil {
		return nil, err
	}
	return report.Statements, nil
}

// RankByNestingDepth returns the top members of dir by nesting depth.
func (a *Analyzer) RankByNestingDepth(ctx context.Context, dir string, limit int) ([]types.ScoredResult, error) {
	report, err := a.GetAnalysis(ctx, dir, limit)
	if err != nil {
		return nil, err
	}
	return report.Nesting, nil
}

// collectFiles walks dir and returns every C# source file, narrowed by
// the include patterns when any are set.
func (a *Analyzer) collectFiles(dir string) ([]string, error) {
	var filePaths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}
		if d.IsDir() || !strings.HasSuffix(path, sourceExtension) {
			return nil
		}
		if !a.included(dir, path) {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filePaths, nil
}

func (a *Analyzer) included(root, path string) bool {
	if len(a.Include) == 0 {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range a.Include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// scoreFile parses one file and scores its members, consulting the cache
// first. Scores carry the file's base name so ranked output is stable
// across differing scan roots.
func (a *Analyzer) scoreFile(ctx context.Context, path string) ([]types.MemberScore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if scores, ok := a.Cache.Get(path, info.ModTime()); ok {
		a.Logger.Debug("cache hit", "path", path)
		return scores, nil
	}

	root, err := a.Parser.ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	members := ExtractMembers(root)
	scores := make([]types.MemberScore, 0, len(members))
	for _, m := range members {
		scores = append(scores, types.MemberScore{
			File:       filepath.Base(m.File),
			Line:       m.Line,
			Statements: StatementCount(m),
			Nesting:    NestingDepth(m),
		})
	}

	a.Cache.Put(path, info.ModTime(), scores)
	a.Logger.Debug("scored file", "path", path, "members", len(scores))
	return scores, nil
}

// buildReport ranks the merged per-file scores under both metrics.
func buildReport(scores []types.MemberScore, limit int) types.RankReport {
	statements := make([]types.ScoredResult, 0, len(scores))
	nesting := make([]types.ScoredResult, 0, len(scores))
	for _, s := range scores {
		statements = append(statements, types.ScoredResult{File: s.File, Line: s.Line, Value: s.Statements})
		nesting = append(nesting, types.ScoredResult{File: s.File, Line: s.Line, Value: s.Nesting})
	}
	return types.RankReport{
		Statements: Rank(statements, limit),
		Nesting:    Rank(nesting, limit),
	}
}
