// Package readability provides a fallback-source parser built on
// go-readability's article extraction.
package readability

import (
	"strings"

	"github.com/fwojciec/jobscan"
	readability "github.com/go-shiori/go-readability"
)

// fallbackConfidence is fixed and moderate: readability output is usable
// but carries no posting-specific verification.
const fallbackConfidence = 0.5

// minArticleText is the minimum extracted length worth passing along;
// shorter results are left to the guaranteed trafilatura stage.
const minArticleText = 80

// Ensure Parser implements jobscan.Parser at compile time.
var _ jobscan.Parser = (*Parser)(nil)

// Parser wraps go-readability as a general boilerplate-stripping
// extraction stage. It is site-agnostic: no job-board assumptions, just
// main-content detection.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse runs readability over the raw document. Returns (nil, nil) when
// extraction fails or yields too little text; the trafilatura stage
// behind it guarantees a candidate either way.
func (p *Parser) Parse(html string) (*jobscan.Candidate, error) {
	if html == "" {
		return nil, nil
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return nil, nil
	}

	text := strings.TrimSpace(article.TextContent)
	if len(text) < minArticleText {
		return nil, nil
	}

	return &jobscan.Candidate{
		Source:     jobscan.SourceFallback,
		Title:      strings.TrimSpace(article.Title),
		Company:    strings.TrimSpace(article.SiteName),
		Summary:    strings.TrimSpace(article.Excerpt),
		RawText:    text,
		Confidence: fallbackConfidence,
	}, nil
}
