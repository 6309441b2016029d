package jobscan

// CandidateSource identifies which extraction strategy produced a candidate.
type CandidateSource string

// CandidateSource constants, from highest to lowest trust.
const (
	SourceStructured CandidateSource = "structured"
	SourceHeuristic  CandidateSource = "heuristic"
	SourceFallback   CandidateSource = "fallback"
)

// Candidate is the output of a single extraction strategy. Candidates are
// never mutated after creation; the pipeline only compares and selects them.
type Candidate struct {
	// Source is the strategy that produced this candidate.
	Source CandidateSource

	// Title is the job title, if the strategy could identify one.
	Title string

	// Company is the hiring organization name, if identified.
	Company string

	// Summary is a short description of the role, if identified.
	Summary string

	// Responsibilities holds individual duty lines, in document order.
	Responsibilities []string

	// RawText is the extracted posting text before cleaning.
	RawText string

	// Confidence estimates how trustworthy this candidate is, in [0,1].
	// It is used only for stage selection.
	Confidence float64
}

// Parser extracts a job-posting candidate from raw HTML.
// Implementations form an ordered fallback chain composed by the pipeline.
type Parser interface {
	// Parse attempts to extract a candidate from the raw HTML.
	// A (nil, nil) return means the strategy does not apply to this page;
	// that is expected control flow, not an error. Errors are reserved for
	// genuinely malformed input the strategy should have handled.
	Parse(html string) (*Candidate, error)
}
