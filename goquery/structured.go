// Package goquery provides the structured-data and heuristic job-posting
// parsers, the ATS platform detector, and the per-platform selector
// registry, all built on goquery document traversal.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscan"
)

// structuredConfidence is fixed and high: JSON-LD is the machine-authored
// representation the site itself publishes for search engines.
const structuredConfidence = 0.9

// Ensure StructuredParser implements jobscan.Parser at compile time.
var _ jobscan.Parser = (*StructuredParser)(nil)

// StructuredParser extracts Schema.org JobPosting JSON-LD from a page.
// It deserializes permissively: unknown or missing fields become empty
// rather than failing the parse, and absence of JobPosting data is
// expected, not an error.
type StructuredParser struct {
	converter jobscan.Converter
}

// NewStructuredParser creates a new StructuredParser. The converter
// flattens description HTML to text; nil falls back to plain tag
// stripping via goquery.
func NewStructuredParser(converter jobscan.Converter) *StructuredParser {
	return &StructuredParser{converter: converter}
}

// Parse scans ld+json script blocks for a JobPosting declaration and maps
// its recognized fields into a candidate. Returns (nil, nil) when no such
// block exists or none can be deserialized.
func (p *StructuredParser) Parse(html string) (*jobscan.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	var posting map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		posting = findJobPosting(data)
		return posting == nil
	})
	if posting == nil {
		return nil, nil
	}

	title := stringField(posting, "title", "name")
	company := companyField(posting)
	description := p.descriptionText(stringField(posting, "description"))
	responsibilities := listField(posting, "responsibilities")
	qualifications := listField(posting, "qualifications", "skills")

	var sb strings.Builder
	if title != "" {
		sb.WriteString(title + "\n\n")
	}
	if company != "" {
		sb.WriteString(company + "\n\n")
	}
	if description != "" {
		sb.WriteString(description + "\n\n")
	}
	for _, r := range responsibilities {
		sb.WriteString(r + "\n")
	}
	for _, q := range qualifications {
		sb.WriteString(q + "\n")
	}

	return &jobscan.Candidate{
		Source:           jobscan.SourceStructured,
		Title:            title,
		Company:          company,
		Summary:          firstParagraph(description),
		Responsibilities: responsibilities,
		RawText:          strings.TrimSpace(sb.String()),
		Confidence:       structuredConfidence,
	}, nil
}

// findJobPosting walks a decoded JSON-LD value looking for a JobPosting
// node. Handles top-level objects, arrays of schemas, and @graph wrappers.
func findJobPosting(data any) map[string]any {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if found := findJobPosting(item); found != nil {
				return found
			}
		}
	case map[string]any:
		if isJobPosting(v) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findJobPosting(graph)
		}
	}
	return nil
}

// isJobPosting checks the @type declaration, which may be a string or a
// list of type names.
func isJobPosting(data map[string]any) bool {
	switch t := data["@type"].(type) {
	case string:
		return strings.Contains(t, "JobPosting")
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.Contains(s, "JobPosting") {
				return true
			}
		}
	}
	return false
}

// stringField returns the first non-empty value among the given keys.
// Object values are reduced through common sub-keys; lists are joined.
func stringField(data map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := data[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			for _, sub := range []string{"@value", "name", "value"} {
				if s, ok := v[sub].(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
			}
		case []any:
			if joined := joinStrings(v, ", "); joined != "" {
				return joined
			}
		}
	}
	return ""
}

// companyField extracts the hiring organization name, which sites publish
// as either a plain string or an Organization object.
func companyField(data map[string]any) string {
	switch org := data["hiringOrganization"].(type) {
	case string:
		return strings.TrimSpace(org)
	case map[string]any:
		if name, ok := org["name"].(string); ok && name != "" {
			return strings.TrimSpace(name)
		}
		if name, ok := org["legalName"].(string); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// listField returns the first non-empty list among the given keys.
// A lone string value becomes a single-element list.
func listField(data map[string]any, keys ...string) []string {
	for _, key := range keys {
		switch v := data[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return []string{s}
			}
		case []any:
			var out []string
			for _, item := range v {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func joinStrings(items []any, sep string) string {
	var parts []string
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, sep)
}

// descriptionText flattens the description, which is almost always an HTML
// fragment, into plain text.
func (p *StructuredParser) descriptionText(description string) string {
	if description == "" {
		return ""
	}
	if p.converter != nil {
		if text, err := p.converter.Convert(description); err == nil {
			return strings.TrimSpace(text)
		}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.TrimSpace(description)
	}
	return strings.TrimSpace(doc.Text())
}

// firstParagraph returns the first non-empty line group of text.
func firstParagraph(text string) string {
	for _, part := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(part); p != "" {
			return p
		}
	}
	return ""
}
