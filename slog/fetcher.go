// Package slog provides logging decorators for pipeline dependencies.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscan"
	"github.com/google/uuid"
)

// Ensure LoggingFetcher implements jobscan.Fetcher.
var _ jobscan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging. Each fetch
// gets a correlation id so redirect chains and failures can be tied
// together in logs from concurrent batch runs.
type LoggingFetcher struct {
	next   jobscan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jobscan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *jobscan.FetchResult, err error) {
	id := uuid.NewString()
	defer func(begin time.Time) {
		attrs := []any{
			"fetch_id", id,
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"final_url", result.FinalURL,
				"status", result.StatusCode,
				"bytes", len(result.HTML),
			)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
