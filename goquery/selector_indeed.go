package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SiteSelector = (*IndeedSelector)(nil)

// IndeedSelector targets Indeed viewjob pages. #jobDescriptionText has
// been stable across Indeed redesigns; the jobsearch-* classes cover the
// header elements.
type IndeedSelector struct {
	baseSelector
}

// NewIndeedSelector creates a new IndeedSelector.
func NewIndeedSelector() *IndeedSelector {
	return &IndeedSelector{baseSelector{
		name:    "indeed",
		content: []string{"#jobDescriptionText", ".jobsearch-jobDescriptionText"},
		title: []string{
			"h1[data-testid='jobsearch-JobInfoHeader-title']",
			".jobsearch-JobInfoHeader-title",
		},
		company: []string{
			"[data-testid='inlineHeader-companyName']",
			"[data-testid='company-name']",
		},
	}}
}
