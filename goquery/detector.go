package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscan"
)

// Ensure Detector implements jobscan.PlatformDetector at compile time.
var _ jobscan.PlatformDetector = (*Detector)(nil)

// Detector identifies ATS platforms from HTML content. It checks for
// platform-specific ids, classes, data attributes, and og:url metadata
// that each hosted job board injects into its pages. URL-based detection
// (jobscan.DetectPlatformURL) is preferred when the host is recognizable;
// this detector covers postings embedded into company career pages.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) jobscan.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return jobscan.PlatformUnknown
	}

	if platform := d.detectFromOGURL(doc); platform != jobscan.PlatformUnknown {
		return platform
	}

	// Greenhouse: #grnhse_app is the embed mount point, .app-title and
	// #application_form appear on hosted boards.
	if d.hasSelector(doc, "#grnhse_app") ||
		d.hasSelector(doc, "#application_form") ||
		d.hasSelector(doc, ".app-title") && d.hasSelector(doc, "#content") {
		return jobscan.PlatformGreenhouse
	}

	// Lever: hosted postings use the posting-* class family.
	if d.hasSelector(doc, ".posting-headline") ||
		d.hasSelector(doc, ".posting-page") ||
		d.hasSelector(doc, ".section-wrapper.page-full-width") {
		return jobscan.PlatformLever
	}

	// Workday: data-automation-id attributes are unique to Workday pages.
	if d.hasSelector(doc, "[data-automation-id='jobPostingDescription']") ||
		d.hasSelector(doc, "[data-automation-id='jobPostingHeader']") {
		return jobscan.PlatformWorkday
	}

	// LinkedIn public job pages.
	if d.hasSelector(doc, ".show-more-less-html__markup") ||
		d.hasSelector(doc, ".top-card-layout__title") ||
		d.hasSelector(doc, ".topcard__title") {
		return jobscan.PlatformLinkedIn
	}

	// Indeed viewjob pages.
	if d.hasSelector(doc, "#jobDescriptionText") ||
		d.hasSelector(doc, ".jobsearch-JobComponent") {
		return jobscan.PlatformIndeed
	}

	return jobscan.PlatformUnknown
}

// detectFromOGURL checks the og:url meta tag, which hosted boards set to
// their own canonical domain even when embedded.
func (d *Detector) detectFromOGURL(doc *goquery.Document) jobscan.Platform {
	ogURL := ""
	doc.Find("meta[property='og:url']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			ogURL = strings.ToLower(content)
		}
	})

	if ogURL == "" {
		return jobscan.PlatformUnknown
	}

	switch {
	case strings.Contains(ogURL, "greenhouse.io"):
		return jobscan.PlatformGreenhouse
	case strings.Contains(ogURL, "lever.co"):
		return jobscan.PlatformLever
	case strings.Contains(ogURL, "myworkdayjobs.com"):
		return jobscan.PlatformWorkday
	case strings.Contains(ogURL, "linkedin.com/jobs"):
		return jobscan.PlatformLinkedIn
	case strings.Contains(ogURL, "indeed.com"):
		return jobscan.PlatformIndeed
	}

	return jobscan.PlatformUnknown
}

// hasSelector checks if the document contains at least one element
// matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
