package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SiteSelector = (*GenericSelector)(nil)

// GenericSelector covers unrecognized sites using the class and id
// patterns job boards converge on (job-description, job-details,
// posting-content) plus semantic HTML landmarks. It is the registry
// fallback; when none of its selectors match either, the heuristic
// parser falls through to its text-density scan.
type GenericSelector struct {
	baseSelector
}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{baseSelector{
		name: "generic",
		content: []string{
			"[class*='job-description']",
			"[class*='job_description']",
			"[class*='jobDescription']",
			"[id*='job-description']",
			"[id*='job_description']",
			"[class*='job-details']",
			"[class*='posting-content']",
			"[class*='description-content']",
			"[itemprop='description']",
			"main",
			"article",
			"[role='main']",
		},
		title: []string{
			"[class*='job-title'] h1", "h1[class*='job-title']",
			"[class*='posting-title']", "h1", "h2",
		},
		company: []string{
			"[class*='company-name']",
			"[itemprop='hiringOrganization']",
		},
	}}
}
