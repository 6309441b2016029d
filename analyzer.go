package jobscan

import "context"

// Analysis holds the structured intelligence an LLM derives from an
// extraction result. These fields are produced by an external language
// model service, not by the extraction pipeline itself.
type Analysis struct {
	JobTitle          string   `json:"job_title"`
	Company           string   `json:"company"`
	JobSummary        string   `json:"job_summary"`
	Responsibilities  []string `json:"responsibilities"`
	HardSkills        []string `json:"hard_skills"`
	SoftSkills        []string `json:"soft_skills"`
	ATSKeywords       []string `json:"ats_keywords"`
	InferredSkills    []string `json:"inferred_skills"`
	SeniorityLevel    string   `json:"seniority_level"`
	YearsOfExperience string   `json:"years_of_experience"`
}

// Analyzer derives resume-relevant analysis from an extraction result.
type Analyzer interface {
	// Analyze submits the extracted posting to a language model and
	// returns its structured analysis.
	Analyze(ctx context.Context, result *ExtractionResult) (*Analysis, error)
}
