package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/hashicorp/go-hclog"

	"github.com/sharprank/sharprank"
	"github.com/sharprank/sharprank/db"
	"github.com/sharprank/sharprank/types"
)

const usage = `sharprank - rank C# members by statement count and nesting depth.

Usage:
  sharprank <dir> [--limit=<n>] [--statements=<file>] [--nesting=<file>]
            [--include=<glob>]... [--db=<url>] [--namespace=<ns>]
            [--database=<name>] [--db-user=<user>] [--db-pass=<pass>] [--verbose]
  sharprank -h | --help

Options:
  --limit=<n>          Entries kept per ranking [default: 100].
  --statements=<file>  Output file for the statement-count ranking (stdout if empty).
  --nesting=<file>     Output file for the nesting-depth ranking (stdout if empty).
  --include=<glob>     Only scan files matching this glob, relative to <dir> (repeatable).
  --db=<url>           SurrealDB connection URL; rankings are stored when set.
  --namespace=<ns>     SurrealDB namespace [default: test].
  --database=<name>    SurrealDB database [default: test].
  --db-user=<user>     SurrealDB username [default: root].
  --db-pass=<pass>     SurrealDB password [default: root].
  --verbose            Enable debug logging.
  -h --help            Show this help.`

type options struct {
	Dir        string   `docopt:"<dir>"`
	Limit      int      `docopt:"--limit"`
	Statements string   `docopt:"--statements"`
	Nesting    string   `docopt:"--nesting"`
	Include    []string `docopt:"--include"`
	DBURL      string   `docopt:"--db"`
	Namespace  string   `docopt:"--namespace"`
	Database   string   `docopt:"--database"`
	DBUser     string   `docopt:"--db-user"`
	DBPass     string   `docopt:"--db-pass"`
	Verbose    bool     `docopt:"--verbose"`
}

func main() {
	parsed, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	var opts options
	if err := parsed.Bind(&opts); err != nil {
		log.Fatalf("Failed to bind arguments: %v", err)
	}

	level := hclog.Info
	if opts.Verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "sharprank",
		Output: os.Stderr,
		Level:  level,
	})

	analyzer, err := newAnalyzer(opts, logger)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}
	analyzer.SetInclude(opts.Include)

	ctx := context.Background()
	if err := analyzer.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize analyzer: %v", err)
	}

	report, err := analyzer.AnalyzeDirectory(ctx, opts.Dir, opts.Limit)
	if err != nil {
		log.Fatalf("Failed to analyze directory: %v", err)
	}

	if err := emit(opts.Statements, report.Statements); err != nil {
		log.Fatalf("Failed to write statement ranking: %v", err)
	}
	if err := emit(opts.Nesting, report.Nesting); err != nil {
		log.Fatalf("Failed to write nesting ranking: %v", err)
	}
}

func newAnalyzer(opts options, logger hclog.Logger) (*sharprank.Analyzer, error) {
	if opts.DBURL == "" {
		return sharprank.NewAnalyzer(logger), nil
	}
	return sharprank.NewStoringAnalyzer(db.Config{
		URL:       opts.DBURL,
		Namespace: opts.Namespace,
		Database:  opts.Database,
		Username:  opts.DBUser,
		Password:  opts.DBPass,
	}, logger)
}

func emit(path string, results []types.ScoredResult) error {
	rendered := types.RenderTSV(results)
	if path == "" {
		fmt.Print(rendered)
		return nil
	}
	return os.WriteFile(path, []byte(rendered), 0644)
}
