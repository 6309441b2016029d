// Package trafilatura provides the guaranteed last-resort parser built on
// go-trafilatura's boilerplate-removal algorithm.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/jobscan"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// fallbackConfidence is fixed and moderate: the output is usable but
// unverified against any posting structure.
const fallbackConfidence = 0.5

// Ensure Parser implements jobscan.Parser at compile time.
var _ jobscan.Parser = (*Parser)(nil)

// Parser wraps go-trafilatura as the final stage of the extraction chain.
// It never returns a nil candidate: when trafilatura itself fails or
// yields nothing, the parser degrades to raw tag-stripped document text,
// trading precision for availability. Whether that text is long enough to
// be usable is the pipeline's call, not this parser's.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts main content from the raw document.
func (p *Parser) Parse(rawHTML string) (*jobscan.Candidate, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return p.stripped(rawHTML), nil
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return p.stripped(rawHTML), nil
	}

	return &jobscan.Candidate{
		Source:     jobscan.SourceFallback,
		Title:      strings.TrimSpace(result.Metadata.Title),
		Company:    strings.TrimSpace(result.Metadata.Sitename),
		Summary:    strings.TrimSpace(result.Metadata.Description),
		RawText:    text,
		Confidence: fallbackConfidence,
	}, nil
}

// stripped returns the last-resort candidate: every text node in the
// document outside script and style regions, in document order.
func (p *Parser) stripped(rawHTML string) *jobscan.Candidate {
	return &jobscan.Candidate{
		Source:     jobscan.SourceFallback,
		RawText:    stripTags(rawHTML),
		Confidence: fallbackConfidence,
	}
}

// stripTags tokenizes the HTML and concatenates text content, skipping
// script, style, and noscript regions.
func stripTags(rawHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))

	var sb strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if text := strings.TrimSpace(string(tokenizer.Text())); text != "" {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
	}
}

func skippedTag(name string) bool {
	switch name {
	case "script", "style", "noscript":
		return true
	}
	return false
}
