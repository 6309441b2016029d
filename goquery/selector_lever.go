package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SiteSelector = (*LeverSelector)(nil)

// LeverSelector targets jobs.lever.co hosted postings, which use the
// posting-* class family: .posting-headline for the title and
// section-wrapped description blocks for the body.
type LeverSelector struct {
	baseSelector
}

// NewLeverSelector creates a new LeverSelector.
func NewLeverSelector() *LeverSelector {
	return &LeverSelector{baseSelector{
		name: "lever",
		content: []string{
			"[data-qa='job-description']",
			".posting-page .section-wrapper",
			".posting-page",
			".content .section",
		},
		title:   []string{".posting-headline h2", ".posting-header h2"},
		company: []string{".main-header-text a", ".posting-logo img[alt]"},
	}}
}
