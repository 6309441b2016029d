package jobscan

// Converter flattens HTML fragments into plain markdown text.
// JobPosting JSON-LD descriptions are HTML; the structured parser uses a
// Converter to turn them into analyzable text before cleaning.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}
