// Package pipeline composes the extraction stages into a single fallback
// chain: fetch, ordered parser attempts with confidence gating, cleaning,
// and keyword ranking, producing one normalized extraction result per URL.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscan"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config holds the policy knobs of the pipeline. The acceptance threshold
// and minimum content length are policy choices, so they are configuration
// rather than constants.
type Config struct {
	// Timeout bounds a whole extraction call, dominated by the fetch.
	// Zero means no pipeline-level deadline beyond the fetcher's own.
	Timeout time.Duration

	// AcceptThreshold is the confidence a candidate needs to be selected
	// without trying later stages.
	AcceptThreshold float64

	// MinContentLen is the minimum cleaned text length for a usable
	// result; below it the pipeline fails with ENOCONTENT.
	MinContentLen int

	// MaxKeywords caps the ranked keyword list.
	MaxKeywords int

	// MinKeywordCount is the minimum term frequency for a keyword to rank.
	MinKeywordCount int
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		AcceptThreshold: 0.6,
		MinContentLen:   200,
		MaxKeywords:     30,
		MinKeywordCount: 2,
	}
}

// Pipeline orchestrates a single-URL extraction. It is stateless beyond
// its wiring: concurrent Extract calls for different URLs are independent.
type Pipeline struct {
	Fetcher jobscan.Fetcher

	// Parsers is the ordered attempt chain. The final parser must be one
	// that never returns a nil candidate (trafilatura.Parser) so the
	// chain as a whole always yields something.
	Parsers []jobscan.Parser

	// Analyzer is the optional LLM collaborator; nil disables Analyze.
	Analyzer jobscan.Analyzer

	// Logger receives stage-level logs. Nil disables logging.
	Logger *slog.Logger

	// Concurrency bounds ExtractAll workers. Zero or negative means 4.
	Concurrency int

	Config Config
}

// Extract runs the full pipeline for one job-posting URL.
//
// Fetch failures propagate with their fetch error codes. ENOCONTENT is
// returned when even the guaranteed fallback stage yields cleaned text
// below Config.MinContentLen. Everything else degrades gracefully to a
// lower-confidence candidate rather than failing.
func (p *Pipeline) Extract(ctx context.Context, rawURL string) (*jobscan.ExtractionResult, error) {
	logger := p.logger().With("request_id", uuid.NewString(), "url", rawURL)

	if p.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Config.Timeout)
		defer cancel()
	}

	fetchURL, resolved := jobscan.CanonicalURL(rawURL)
	if resolved {
		logger.Info("resolved canonical URL", "canonical", fetchURL)
	}

	begin := time.Now()
	page, err := p.Fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		logger.Info("fetch failed", "duration", time.Since(begin), "err", err)
		return nil, err
	}
	logger.Info("fetched page",
		"final_url", page.FinalURL,
		"status", page.StatusCode,
		"bytes", len(page.HTML),
		"duration", time.Since(begin),
	)

	candidate := p.selectCandidate(page.HTML, logger)
	if candidate == nil {
		return nil, jobscan.Errorf(jobscan.ENOCONTENT, "no parser produced a candidate for %s", page.FinalURL)
	}

	cleaned := jobscan.Clean(candidate.RawText)
	if len(cleaned.Text) < p.Config.MinContentLen {
		return nil, jobscan.Errorf(jobscan.ENOCONTENT,
			"extracted only %d characters from %s", len(cleaned.Text), page.FinalURL)
	}

	keywords := jobscan.RankKeywords(cleaned.Text, p.Config.MaxKeywords, p.Config.MinKeywordCount)

	return &jobscan.ExtractionResult{
		Title:      candidate.Title,
		Company:    candidate.Company,
		Source:     candidate.Source,
		FinalURL:   page.FinalURL,
		StatusCode: page.StatusCode,
		Content:    cleaned,
		Keywords:   keywords,
	}, nil
}

// selectCandidate runs the ordered attempt chain. The first candidate
// meeting the acceptance threshold wins; if none does, the highest-
// confidence candidate wins, earliest stage on ties. Parser errors and
// nil candidates mean "try the next stage".
func (p *Pipeline) selectCandidate(html string, logger *slog.Logger) *jobscan.Candidate {
	var best *jobscan.Candidate

	for _, parser := range p.Parsers {
		begin := time.Now()
		candidate, err := parser.Parse(html)
		if err != nil || candidate == nil {
			logger.Debug("parser produced no candidate", "duration", time.Since(begin), "err", err)
			continue
		}
		logger.Info("parser produced candidate",
			"source", string(candidate.Source),
			"confidence", candidate.Confidence,
			"chars", len(candidate.RawText),
			"duration", time.Since(begin),
		)

		if candidate.Confidence >= p.Config.AcceptThreshold {
			return candidate
		}
		if best == nil || candidate.Confidence > best.Confidence {
			best = candidate
		}
	}

	return best
}

// Outcome pairs one URL from a batch with its result or error.
type Outcome struct {
	URL    string
	Result *jobscan.ExtractionResult
	Err    error
}

// ExtractAll runs Extract for each URL with bounded concurrency and
// returns outcomes in input order. Individual failures are recorded per
// URL, not propagated: one blocked posting must not sink a batch.
func (p *Pipeline) ExtractAll(ctx context.Context, urls []string) []Outcome {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	outcomes := make([]Outcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			result, err := p.Extract(gctx, url)
			outcomes[i] = Outcome{URL: url, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Analyze submits an extraction result to the configured LLM collaborator.
func (p *Pipeline) Analyze(ctx context.Context, result *jobscan.ExtractionResult) (*jobscan.Analysis, error) {
	if p.Analyzer == nil {
		return nil, jobscan.Errorf(jobscan.EINVALID, "no analyzer configured")
	}
	return p.Analyzer.Analyze(ctx, result)
}

// logger returns the configured logger or a discarding one.
func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
