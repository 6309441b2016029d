package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SiteSelector = (*LinkedInSelector)(nil)

// LinkedInSelector targets LinkedIn public (logged-out) job pages.
// The description lives in .show-more-less-html__markup inside the
// description section; the top card carries title and company.
type LinkedInSelector struct {
	baseSelector
}

// NewLinkedInSelector creates a new LinkedInSelector.
func NewLinkedInSelector() *LinkedInSelector {
	return &LinkedInSelector{baseSelector{
		name: "linkedin",
		content: []string{
			".show-more-less-html__markup",
			".description__text",
			"#job-details",
		},
		title:   []string{".top-card-layout__title", "h1.topcard__title"},
		company: []string{".topcard__org-name-link", ".top-card-layout__second-subline a"},
	}}
}
