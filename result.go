package jobscan

// ExtractionResult is the final aggregate handed to downstream consumers:
// the LLM analyzer collaborator and the UI. Created once per request and
// immutable afterward.
type ExtractionResult struct {
	// Title is the job title from the selected candidate.
	Title string `json:"title"`

	// Company is the hiring organization name, if known.
	Company string `json:"company"`

	// Source identifies which extraction strategy won.
	Source CandidateSource `json:"source"`

	// FinalURL is the resolved URL after redirects.
	FinalURL string `json:"finalUrl"`

	// StatusCode is the HTTP status of the fetch, for diagnostics.
	StatusCode int `json:"statusCode"`

	// Content is the cleaned posting text.
	Content CleanedContent `json:"content"`

	// Keywords is the ranked ATS keyword list, rank order preserved.
	Keywords []KeywordEntry `json:"keywords"`
}
