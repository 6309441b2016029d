package pipeline_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/jobscan"
	"github.com/fwojciec/jobscan/mock"
	"github.com/fwojciec/jobscan/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingText = "Design, build, and operate distributed backend services. Work with Go, Postgres, and Kafka in a team that owns its systems end to end. Go experience and Kafka experience are both valued here."

func okFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*jobscan.FetchResult, error) {
			return &jobscan.FetchResult{
				URL:        url,
				FinalURL:   url,
				StatusCode: 200,
				HTML:       "<html><body><p>" + postingText + "</p></body></html>",
			}, nil
		},
	}
}

func staticParser(source jobscan.CandidateSource, confidence float64) *mock.Parser {
	return &mock.Parser{
		ParseFn: func(html string) (*jobscan.Candidate, error) {
			return &jobscan.Candidate{
				Source:     source,
				Title:      "Backend Engineer",
				Company:    "Acme Corp",
				RawText:    postingText,
				Confidence: confidence,
			}, nil
		},
	}
}

func nilParser() *mock.Parser {
	return &mock.Parser{
		ParseFn: func(html string) (*jobscan.Candidate, error) { return nil, nil },
	}
}

func testConfig() pipeline.Config {
	config := pipeline.DefaultConfig()
	config.MinContentLen = 50
	return config
}

func TestPipeline_Extract(t *testing.T) {
	t.Parallel()

	t.Run("accepts the first candidate meeting the threshold", func(t *testing.T) {
		t.Parallel()

		laterCalled := false
		later := &mock.Parser{
			ParseFn: func(html string) (*jobscan.Candidate, error) {
				laterCalled = true
				return nil, nil
			},
		}

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9), later},
			Config:  testConfig(),
		}

		result, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.Equal(t, jobscan.SourceStructured, result.Source)
		assert.Equal(t, "Backend Engineer", result.Title)
		assert.Equal(t, "Acme Corp", result.Company)
		assert.Equal(t, 200, result.StatusCode)
		assert.False(t, laterCalled, "later stages should not run after an accepted candidate")
	})

	t.Run("skips failed stages and picks the first acceptable one", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{nilParser(), staticParser(jobscan.SourceHeuristic, 0.8)},
			Config:  testConfig(),
		}

		result, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.Equal(t, jobscan.SourceHeuristic, result.Source)
	})

	t.Run("falls back to the best candidate below the threshold", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{
				staticParser(jobscan.SourceHeuristic, 0.4),
				staticParser(jobscan.SourceFallback, 0.5),
			},
			Config: testConfig(),
		}

		result, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.Equal(t, jobscan.SourceFallback, result.Source)
	})

	t.Run("breaks confidence ties toward the earlier stage", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{
				staticParser(jobscan.SourceHeuristic, 0.5),
				staticParser(jobscan.SourceFallback, 0.5),
			},
			Config: testConfig(),
		}

		result, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.Equal(t, jobscan.SourceHeuristic, result.Source)
	})

	t.Run("treats parser errors as stage misses", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Parser{
			ParseFn: func(html string) (*jobscan.Candidate, error) {
				return nil, jobscan.Errorf(jobscan.EINTERNAL, "parser exploded")
			},
		}

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{failing, staticParser(jobscan.SourceFallback, 0.7)},
			Config:  testConfig(),
		}

		result, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.Equal(t, jobscan.SourceFallback, result.Source)
	})

	t.Run("propagates fetch errors with their codes", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobscan.FetchResult, error) {
				return nil, jobscan.Errorf(jobscan.EBLOCKED, "request blocked with status 403")
			},
		}

		p := &pipeline.Pipeline{
			Fetcher: fetcher,
			Parsers: []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9)},
			Config:  testConfig(),
		}

		_, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.Error(t, err)
		assert.Equal(t, jobscan.EBLOCKED, jobscan.ErrorCode(err))
	})

	t.Run("returns ENOCONTENT when no parser produces a candidate", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{nilParser(), nilParser()},
			Config:  testConfig(),
		}

		_, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.Error(t, err)
		assert.Equal(t, jobscan.ENOCONTENT, jobscan.ErrorCode(err))
	})

	t.Run("returns ENOCONTENT when cleaned text is below the minimum", func(t *testing.T) {
		t.Parallel()

		thin := &mock.Parser{
			ParseFn: func(html string) (*jobscan.Candidate, error) {
				return &jobscan.Candidate{
					Source:     jobscan.SourceFallback,
					RawText:    "Accept all cookies\nSign in\nPrivacy policy",
					Confidence: 0.5,
				}, nil
			},
		}

		config := testConfig()
		config.MinContentLen = 200

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{thin},
			Config:  config,
		}

		_, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.Error(t, err)
		assert.Equal(t, jobscan.ENOCONTENT, jobscan.ErrorCode(err))
	})

	t.Run("cleans content and ranks keywords", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: okFetcher(),
			Parsers: []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9)},
			Config:  testConfig(),
		}

		result, err := p.Extract(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Content.Text)
		assert.NotEmpty(t, result.Content.Paragraphs)

		require.NotEmpty(t, result.Keywords)
		terms := make([]string, len(result.Keywords))
		for i, kw := range result.Keywords {
			terms[i] = kw.Term
		}
		assert.Contains(t, terms, "go")
		for i := 1; i < len(result.Keywords); i++ {
			assert.GreaterOrEqual(t, result.Keywords[i-1].Frequency, result.Keywords[i].Frequency)
		}
	})

	t.Run("fetches the canonical form of embedded posting URLs", func(t *testing.T) {
		t.Parallel()

		var fetched string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobscan.FetchResult, error) {
				fetched = url
				return &jobscan.FetchResult{URL: url, FinalURL: url, StatusCode: 200, HTML: "<html></html>"}, nil
			},
		}

		p := &pipeline.Pipeline{
			Fetcher: fetcher,
			Parsers: []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9)},
			Config:  testConfig(),
		}

		_, err := p.Extract(context.Background(), "https://careers.acme.com/jobs?gh_jid=4567890&for=acme")

		require.NoError(t, err)
		assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/4567890", fetched)
	})
}

func TestPipeline_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("returns outcomes in input order", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://example.com/jobs/1",
			"https://example.com/jobs/2",
			"https://example.com/jobs/3",
		}

		p := &pipeline.Pipeline{
			Fetcher:     okFetcher(),
			Parsers:     []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9)},
			Concurrency: 2,
			Config:      testConfig(),
		}

		outcomes := p.ExtractAll(context.Background(), urls)

		require.Len(t, outcomes, 3)
		for i, outcome := range outcomes {
			assert.Equal(t, urls[i], outcome.URL)
			require.NoError(t, outcome.Err)
			assert.Equal(t, urls[i], outcome.Result.FinalURL)
		}
	})

	t.Run("records individual failures without sinking the batch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobscan.FetchResult, error) {
				if strings.Contains(url, "blocked") {
					return nil, jobscan.Errorf(jobscan.EBLOCKED, "request blocked with status 403")
				}
				return &jobscan.FetchResult{
					URL: url, FinalURL: url, StatusCode: 200,
					HTML: "<html><body><p>" + postingText + "</p></body></html>",
				}, nil
			},
		}

		p := &pipeline.Pipeline{
			Fetcher: fetcher,
			Parsers: []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9)},
			Config:  testConfig(),
		}

		outcomes := p.ExtractAll(context.Background(), []string{
			"https://example.com/jobs/blocked",
			"https://example.com/jobs/ok",
		})

		require.Len(t, outcomes, 2)
		require.Error(t, outcomes[0].Err)
		assert.Equal(t, jobscan.EBLOCKED, jobscan.ErrorCode(outcomes[0].Err))
		assert.Nil(t, outcomes[0].Result)
		require.NoError(t, outcomes[1].Err)
		assert.NotNil(t, outcomes[1].Result)
	})

	t.Run("bounds concurrency", func(t *testing.T) {
		t.Parallel()

		var active, peak int64
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobscan.FetchResult, error) {
				n := atomic.AddInt64(&active, 1)
				for {
					p := atomic.LoadInt64(&peak)
					if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
						break
					}
				}
				defer atomic.AddInt64(&active, -1)
				return &jobscan.FetchResult{
					URL: url, FinalURL: url, StatusCode: 200,
					HTML: "<html><body><p>" + postingText + "</p></body></html>",
				}, nil
			},
		}

		p := &pipeline.Pipeline{
			Fetcher:     fetcher,
			Parsers:     []jobscan.Parser{staticParser(jobscan.SourceStructured, 0.9)},
			Concurrency: 2,
			Config:      testConfig(),
		}

		urls := make([]string, 8)
		for i := range urls {
			urls[i] = "https://example.com/jobs/posting"
		}
		p.ExtractAll(context.Background(), urls)

		assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
	})
}

func TestPipeline_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the configured analyzer", func(t *testing.T) {
		t.Parallel()

		analyzer := &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, result *jobscan.ExtractionResult) (*jobscan.Analysis, error) {
				return &jobscan.Analysis{JobTitle: "Backend Engineer"}, nil
			},
		}

		p := &pipeline.Pipeline{Analyzer: analyzer, Config: testConfig()}

		analysis, err := p.Analyze(context.Background(), &jobscan.ExtractionResult{})

		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", analysis.JobTitle)
	})

	t.Run("returns EINVALID without an analyzer", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{Config: testConfig()}

		_, err := p.Analyze(context.Background(), &jobscan.ExtractionResult{})

		require.Error(t, err)
		assert.Equal(t, jobscan.EINVALID, jobscan.ErrorCode(err))
	})
}
