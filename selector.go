package jobscan

// SiteSelector describes where a known platform keeps its posting content.
// Selectors are plain CSS selector strings, tried in order; the first one
// that matches a non-empty element wins.
type SiteSelector interface {
	// Name returns the selector's identifier for logging.
	Name() string

	// ContentSelectors returns selectors for the posting body container.
	ContentSelectors() []string

	// TitleSelectors returns selectors for the job title element.
	TitleSelectors() []string

	// CompanySelectors returns selectors for the hiring company element.
	CompanySelectors() []string
}

// SelectorRegistry manages platform-specific site selectors and picks the
// appropriate one for a page, falling back to a generic selector when the
// platform is unknown or unregistered.
type SelectorRegistry interface {
	// Get returns the selector for a specific platform.
	// Returns nil if no selector is registered for the platform.
	Get(platform Platform) SiteSelector

	// GetForHTML detects the platform from HTML and returns the appropriate
	// selector, falling back to the generic selector when detection fails.
	GetForHTML(html string) SiteSelector

	// Register adds a selector for a platform, replacing any existing one.
	Register(platform Platform, selector SiteSelector)

	// List returns all registered platforms.
	List() []Platform
}
