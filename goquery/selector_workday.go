package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SiteSelector = (*WorkdaySelector)(nil)

// WorkdaySelector targets Workday (myworkdayjobs.com) postings.
// Workday pages mark elements with data-automation-id attributes; note
// that most Workday content is rendered client-side, so these only match
// when the server returns a populated page.
type WorkdaySelector struct {
	baseSelector
}

// NewWorkdaySelector creates a new WorkdaySelector.
func NewWorkdaySelector() *WorkdaySelector {
	return &WorkdaySelector{baseSelector{
		name:    "workday",
		content: []string{"[data-automation-id='jobPostingDescription']"},
		title:   []string{"[data-automation-id='jobPostingHeader']", "h1[data-automation-id]"},
		company: []string{},
	}}
}
