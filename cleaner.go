package jobscan

import (
	"regexp"
	"strings"
)

// CleanedContent is the normalized, de-noised posting text.
type CleanedContent struct {
	// Text is the full cleaned text, paragraphs separated by blank lines.
	Text string `json:"text"`

	// Paragraphs holds the cleaned paragraph units in document order.
	Paragraphs []string `json:"paragraphs"`
}

// boilerplateLineRe matches whole lines of recurring non-content text:
// cookie banners, apply calls-to-action, navigation breadcrumbs, share
// widgets, and legal footers. Matched lines are dropped during cleaning.
var boilerplateLineRe = regexp.MustCompile(`(?i)^(` +
	`(we|this (web)?site) use[s]? cookies.*|` +
	`accept( all)? cookies|` +
	`cookie (policy|settings|preferences|notice)|` +
	`apply (now|today|for this (job|position|role))!?|` +
	`(quick|easy) apply|` +
	`sign (in|up)|log ?in|create (an )?account|` +
	`back to (jobs|careers|search|listings)|` +
	`share this (job|posting|page)|` +
	`refer a friend|save (this )?job|` +
	`home\s*[>/›].*|` +
	`powered by (greenhouse|lever|workday|smartrecruiters|ashby).*|` +
	`privacy policy|terms of (use|service)|` +
	`all rights reserved.*|` +
	`©\s*\d{4}.*|` +
	`.*\bequal opportunity employer\b.*|` +
	`.*\baffirmative action\b.*` +
	`)$`)

var (
	residualTagRe   = regexp.MustCompile(`<[^<>]*>`)
	horizontalWSRe  = regexp.MustCompile(`[ \t\x{00a0}]+`)
	punctOnlyLineRe = regexp.MustCompile(`^[\s\-•·∙◦▪–—*‣|/\\_=+.]+$`)
)

// bulletCutset holds the leading glyphs stripped from list lines.
const bulletCutset = "•·∙◦▪‣–—*- \t"

// Clean normalizes and de-noises extracted posting text. The transformation
// is pure, deterministic, and idempotent: cleaning already-clean text is a
// no-op.
func Clean(text string) CleanedContent {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = residualTagRe.ReplaceAllString(text, " ")

	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = horizontalWSRe.ReplaceAllString(line, " ")
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, bulletCutset)

		switch {
		case line == "":
			flush()
		case punctOnlyLineRe.MatchString(line):
			flush()
		case len(line) <= 2:
			// One- and two-character lines are markup residue, not content.
		case boilerplateLineRe.MatchString(line):
			// Dropped without ending the paragraph: a CTA in the middle of
			// a description should not split the surrounding prose.
		default:
			current = append(current, line)
		}
	}
	flush()

	return CleanedContent{
		Text:       strings.Join(paragraphs, "\n\n"),
		Paragraphs: paragraphs,
	}
}
