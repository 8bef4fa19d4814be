package db

import (
	"context"

	"github.com/sharprank/sharprank/types"
)

// DB stores completed ranking reports.
type DB interface {
	Initialize(ctx context.Context) error
	StoreReport(ctx context.Context, report types.RankReport) error
}
