package goquery

import "github.com/fwojciec/jobscan"

var _ jobscan.SelectorRegistry = (*Registry)(nil)

// Registry manages platform-specific site selectors and auto-detects
// platforms from HTML content. It uses a PlatformDetector to identify the
// hosting ATS and returns the appropriate selector, falling back to the
// generic selector when the platform is unknown or has no registration.
type Registry struct {
	detector  jobscan.PlatformDetector
	fallback  jobscan.SiteSelector
	selectors map[jobscan.Platform]jobscan.SiteSelector
}

// NewRegistry creates a new Registry with the given detector and fallback
// selector.
func NewRegistry(detector jobscan.PlatformDetector, fallback jobscan.SiteSelector) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[jobscan.Platform]jobscan.SiteSelector),
	}
}

// NewDefaultRegistry creates a Registry with all known platform selectors
// registered and the generic selector as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericSelector())
	r.Register(jobscan.PlatformGreenhouse, NewGreenhouseSelector())
	r.Register(jobscan.PlatformLever, NewLeverSelector())
	r.Register(jobscan.PlatformWorkday, NewWorkdaySelector())
	r.Register(jobscan.PlatformLinkedIn, NewLinkedInSelector())
	r.Register(jobscan.PlatformIndeed, NewIndeedSelector())
	return r
}

// Get returns the selector for a specific platform.
// Returns nil if no selector is registered for the platform.
func (r *Registry) Get(platform jobscan.Platform) jobscan.SiteSelector {
	return r.selectors[platform]
}

// GetForHTML detects the platform from HTML and returns the appropriate
// selector, falling back to the generic selector when the platform is
// unknown or unregistered.
func (r *Registry) GetForHTML(html string) jobscan.SiteSelector {
	platform := r.detector.Detect(html)
	if selector, ok := r.selectors[platform]; ok {
		return selector
	}
	return r.fallback
}

// Register adds a selector for a platform.
// If a selector is already registered for the platform, it is replaced.
func (r *Registry) Register(platform jobscan.Platform, selector jobscan.SiteSelector) {
	r.selectors[platform] = selector
}

// List returns all registered platforms.
func (r *Registry) List() []jobscan.Platform {
	platforms := make([]jobscan.Platform, 0, len(r.selectors))
	for p := range r.selectors {
		platforms = append(platforms, p)
	}
	return platforms
}
