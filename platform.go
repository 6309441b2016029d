package jobscan

import (
	"net/url"
	"regexp"
	"strings"
)

// Platform identifies the ATS or job board hosting a posting.
type Platform string

// Platform constants.
const (
	PlatformUnknown    Platform = ""
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformIndeed     Platform = "indeed"
)

// PlatformDetector identifies the hosting platform from HTML content.
// Implementations check platform-specific CSS classes, ids, and meta tags.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns PlatformUnknown if the platform cannot be determined.
	Detect(html string) Platform
}

var (
	greenhouseHostRe = regexp.MustCompile(`(?:boards|job-boards|job_app)\.greenhouse\.io`)
	greenhouseJobRe  = regexp.MustCompile(`/jobs?/(\d+)`)
	leverHostRe      = regexp.MustCompile(`jobs\.(?:eu\.)?lever\.co`)
	workdayHostRe    = regexp.MustCompile(`myworkdayjobs\.com|wd\d+\.myworkdaysite\.com|\.workday\.com/.*/job/`)
)

// DetectPlatformURL identifies the platform from URL patterns alone.
// This is cheaper and more reliable than HTML inspection when the posting
// lives on a recognizable ATS host; embedded postings (e.g. a careers page
// proxying Greenhouse via a gh_jid parameter) are also recognized.
func DetectPlatformURL(rawURL string) Platform {
	lower := strings.ToLower(rawURL)

	switch {
	case greenhouseHostRe.MatchString(lower), strings.Contains(lower, "gh_jid="):
		return PlatformGreenhouse
	case leverHostRe.MatchString(lower):
		return PlatformLever
	case workdayHostRe.MatchString(lower):
		return PlatformWorkday
	case strings.Contains(lower, "linkedin.com/jobs"):
		return PlatformLinkedIn
	case strings.Contains(lower, "indeed.com"):
		return PlatformIndeed
	}
	return PlatformUnknown
}

// CanonicalURL rewrites embedded or proxied posting URLs to the form most
// likely to serve the full posting HTML. The second return reports whether
// the URL was modified. URLs that cannot be improved pass through unchanged.
func CanonicalURL(rawURL string) (string, bool) {
	switch DetectPlatformURL(rawURL) {
	case PlatformGreenhouse:
		return canonicalGreenhouseURL(rawURL)
	case PlatformLever:
		return canonicalLeverURL(rawURL)
	}
	return rawURL, false
}

// canonicalGreenhouseURL resolves embedded Greenhouse postings to the
// canonical boards.greenhouse.io form. Careers pages commonly embed
// Greenhouse via a gh_jid query parameter or an embed token.
func canonicalGreenhouseURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, false
	}

	if strings.Contains(strings.ToLower(u.Host), "greenhouse.io") {
		return rawURL, false
	}

	q := u.Query()
	if jobID := q.Get("gh_jid"); jobID != "" {
		if company := greenhouseCompanyToken(rawURL, q); company != "" {
			return "https://boards.greenhouse.io/" + company + "/jobs/" + jobID, true
		}
		return "https://boards.greenhouse.io/embed/job_app?token=" + jobID, true
	}
	if token := q.Get("token"); token != "" {
		return "https://boards.greenhouse.io/embed/job_app?token=" + token, true
	}

	if m := greenhouseJobRe.FindStringSubmatch(u.Path); m != nil {
		if company := greenhouseCompanyToken(rawURL, q); company != "" {
			return "https://boards.greenhouse.io/" + company + "/jobs/" + m[1], true
		}
	}

	return rawURL, false
}

// greenhouseCompanyToken extracts the Greenhouse board token from the URL
// or its query parameters, if present.
func greenhouseCompanyToken(rawURL string, q url.Values) string {
	if company := q.Get("for"); company != "" {
		return company
	}
	if m := regexp.MustCompile(`greenhouse\.io/(?:embed/job_board/js\?for=)?([^/?&]+)`).FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// canonicalLeverURL strips the trailing /apply segment so the main posting
// page (which carries the description) is fetched instead of the form.
func canonicalLeverURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, false
	}

	cleaned := strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), "/apply")
	if cleaned == strings.TrimSuffix(u.Path, "/") {
		return rawURL, false
	}

	u.Path = cleaned
	return u.String(), true
}
