package mock

import (
	"context"

	"github.com/fwojciec/jobscan"
)

var _ jobscan.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of jobscan.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, result *jobscan.ExtractionResult) (*jobscan.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, result *jobscan.ExtractionResult) (*jobscan.Analysis, error) {
	return a.AnalyzeFn(ctx, result)
}
