// Package gemini implements the LLM analyzer collaborator using Google
// Gemini. The extraction pipeline itself never calls a language model;
// this package consumes its output.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/jobscan"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements jobscan.Analyzer at compile time.
var _ jobscan.Analyzer = (*Analyzer)(nil)

// Analyzer implements jobscan.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze submits the extracted posting to Gemini and parses its JSON
// response into structured analysis fields.
func (a *Analyzer) Analyze(ctx context.Context, result *jobscan.ExtractionResult) (*jobscan.Analysis, error) {
	if result == nil || result.Content.Text == "" {
		return nil, jobscan.Errorf(jobscan.EINVALID, "extraction result with content required")
	}

	prompt := BuildUserPrompt(result)
	config := BuildConfig()

	resp, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, jobscan.Errorf(jobscan.EINTERNAL, "gemini returned nil result")
	}

	return parseAnalysis(resp.Text())
}

// parseAnalysis decodes the model's JSON response. Models occasionally
// wrap JSON in a markdown fence despite instructions; strip it first.
func parseAnalysis(text string) (*jobscan.Analysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var analysis jobscan.Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &analysis); err != nil {
		return nil, jobscan.Errorf(jobscan.EINTERNAL, "gemini returned invalid JSON: %v", err)
	}
	return &analysis, nil
}
