package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SiteSelector = (*GreenhouseSelector)(nil)

// GreenhouseSelector targets Greenhouse-hosted boards and embeds.
// Validated against boards.greenhouse.io and the job-boards.greenhouse.io
// redesign:
//   - #content wraps the posting body on classic boards
//   - .job__description is the redesign's body container
//   - .app-title / .job__title carry the title
//   - .company-name / .job__company carry the hiring organization
type GreenhouseSelector struct {
	baseSelector
}

// NewGreenhouseSelector creates a new GreenhouseSelector.
func NewGreenhouseSelector() *GreenhouseSelector {
	return &GreenhouseSelector{baseSelector{
		name:    "greenhouse",
		content: []string{".job__description", "#content", "#grnhse_app", ".opening"},
		title:   []string{".job__title h1", "h1.app-title", ".app-title"},
		company: []string{".job__company", ".company-name", "span.company-name"},
	}}
}
