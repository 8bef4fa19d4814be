package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharprank/sharprank/types"
)

func TestRenderTSV(t *testing.T) {
	results := []types.ScoredResult{
		{File: "Big.cs", Line: 42, Value: 120},
		{File: "Small.cs", Line: 7, Value: 3},
	}

	assert.Equal(t, "120\tBig.cs:42\n3\tSmall.cs:7\n", types.RenderTSV(results))
}

func TestRenderTSVEmpty(t *testing.T) {
	assert.Equal(t, "", types.RenderTSV(nil))
}

func TestReportRecords(t *testing.T) {
	report := types.RankReport{
		Statements: []types.ScoredResult{
			{File: "a.cs", Line: 1, Value: 9},
			{File: "b.cs", Line: 2, Value: 5},
		},
		Nesting: []types.ScoredResult{
			{File: "c.cs", Line: 3, Value: 4},
		},
	}

	records := report.Records()
	assert.Len(t, records, 3)
	assert.Equal(t, types.MetricStatements, records[0].Metric)
	assert.Equal(t, 1, records[0].Rank)
	assert.Equal(t, 2, records[1].Rank)
	assert.Equal(t, types.MetricNesting, records[2].Metric)
	assert.Equal(t, 1, records[2].Rank)
	assert.Equal(t, "c.cs", records[2].File)
}
