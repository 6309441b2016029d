package goquery

// baseSelector is the shared implementation backing the per-platform
// selectors. Each platform file supplies its selector lists.
type baseSelector struct {
	name    string
	content []string
	title   []string
	company []string
}

// Name returns the selector's identifier.
func (s *baseSelector) Name() string {
	return s.name
}

// ContentSelectors returns selectors for the posting body container.
func (s *baseSelector) ContentSelectors() []string {
	return s.content
}

// TitleSelectors returns selectors for the job title element.
func (s *baseSelector) TitleSelectors() []string {
	return s.title
}

// CompanySelectors returns selectors for the hiring company element.
func (s *baseSelector) CompanySelectors() []string {
	return s.company
}
