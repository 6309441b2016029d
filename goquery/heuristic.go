package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscan"
)

const (
	// confidenceFloor discards candidates that would be useless at any
	// acceptance threshold: too little text, or mostly navigation.
	confidenceFloor = 0.35

	// minContainerText is the minimum squished text length for an element
	// to be considered a content container at all.
	minContainerText = 150

	// fullLengthText is the text length that earns the full length score.
	// Real postings are usually 1500+ characters.
	fullLengthText = 1500

	// maxLinkRatio rejects containers whose text is mostly link text.
	maxLinkRatio = 0.7
)

// boilerplateClassRe matches class/id values of regions excluded from the
// density scan.
var boilerplateClassRe = regexp.MustCompile(`(?i)\b(nav|navbar|menu|header|footer|sidebar|cookie|banner|modal|popup|breadcrumb|pagination|related|similar|share|social)\b`)

// Ensure HeuristicParser implements jobscan.Parser at compile time.
var _ jobscan.Parser = (*HeuristicParser)(nil)

// HeuristicParser extracts job content from raw HTML via tag and class
// heuristics. It first tries the platform-specific selectors from its
// registry, then falls back to a generic text-density scan for the
// dominant content container. Site markup is heterogeneous, so
// correctness here is approximate: candidates that look too thin or too
// link-heavy are discarded rather than guessed at.
type HeuristicParser struct {
	registry jobscan.SelectorRegistry
}

// NewHeuristicParser creates a new HeuristicParser.
// A nil registry disables platform-specific selection; the parser then
// relies on the generic selectors and the density scan alone.
func NewHeuristicParser(registry jobscan.SelectorRegistry) *HeuristicParser {
	return &HeuristicParser{registry: registry}
}

// Parse attempts to locate the dominant posting container and score its
// content. Returns (nil, nil) when no container clears the confidence
// floor.
func (p *HeuristicParser) Parse(html string) (*jobscan.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	doc.Find("script, style, noscript, iframe, svg, form, button").Remove()

	selector := p.selectorFor(html)

	container := findContainer(doc, selector.ContentSelectors())
	if container == nil {
		container = densestContainer(doc)
	}
	if container == nil {
		return nil, nil
	}

	// Navigation regions inside the chosen container are still noise.
	container.Find("nav, header, footer, aside").Remove()

	text := squish(container.Text())
	if len(text) < minContainerText {
		return nil, nil
	}
	linkText := squish(container.Find("a").Text())
	if float64(len(linkText))/float64(len(text)) > maxLinkRatio {
		return nil, nil
	}

	blocks, paragraphLike := collectBlocks(container)
	rawText := strings.Join(blocks, "\n\n")
	if rawText == "" {
		rawText = text
	}

	title := firstText(doc, selector.TitleSelectors())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	company := firstText(doc, selector.CompanySelectors())

	confidence := scoreCandidate(title != "", len(text), blocks, paragraphLike)
	if confidence < confidenceFloor {
		return nil, nil
	}

	return &jobscan.Candidate{
		Source:           jobscan.SourceHeuristic,
		Title:            title,
		Company:          company,
		Responsibilities: collectListItems(container),
		RawText:          rawText,
		Confidence:       confidence,
	}, nil
}

// selectorFor returns the site selector for the page, falling back to the
// generic selector when no registry is configured.
func (p *HeuristicParser) selectorFor(html string) jobscan.SiteSelector {
	if p.registry != nil {
		return p.registry.GetForHTML(html)
	}
	return NewGenericSelector()
}

// findContainer returns the first selector match with enough text to be a
// plausible posting body.
func findContainer(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 {
			continue
		}
		if len(squish(s.Text())) >= minContainerText {
			return s
		}
	}
	return nil
}

// densestContainer scans for the element with the highest ratio of text
// length to descendant tag count, skipping regions whose class or id
// marks them as navigation or other boilerplate.
func densestContainer(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	var bestScore float64

	doc.Find("div, section, article, main, td").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		role, _ := s.Attr("role")
		if boilerplateClassRe.MatchString(class + " " + id + " " + role) {
			return
		}

		textLen := len(squish(s.Text()))
		if textLen < minContainerText {
			return
		}

		score := float64(textLen) / float64(1+s.Find("*").Length())
		if score > bestScore {
			best = s
			bestScore = score
		}
	})

	return best
}

// collectBlocks gathers the container's text blocks in document order and
// counts the paragraph-like ones (prose paragraphs and list items of
// sentence length). When the container holds bare text without block
// elements, its lines serve as the blocks.
func collectBlocks(container *goquery.Selection) (blocks []string, paragraphLike int) {
	container.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		// Skip elements that only wrap other block elements.
		if s.Find("p, li").Length() > 0 {
			return
		}
		text := squish(s.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, text)
		if goquery.NodeName(s) == "p" || goquery.NodeName(s) == "li" {
			if len(text) >= 40 {
				paragraphLike++
			}
		}
	})

	if len(blocks) > 0 {
		return blocks, paragraphLike
	}

	for _, line := range strings.Split(container.Text(), "\n") {
		line = squish(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, line)
		if len(line) >= 40 {
			paragraphLike++
		}
	}
	return blocks, paragraphLike
}

// collectListItems returns the container's list items of plausible duty
// length, in document order.
func collectListItems(container *goquery.Selection) []string {
	var items []string
	container.Find("li").Each(func(_ int, s *goquery.Selection) {
		text := squish(s.Text())
		if len(text) >= 10 && len(text) <= 300 {
			items = append(items, text)
		}
	})
	return items
}

// scoreCandidate computes heuristic confidence from three signals: a
// detected title (0.2), text volume (up to 0.4), and the share of
// paragraph-like blocks (up to 0.4).
func scoreCandidate(hasTitle bool, textLen int, blocks []string, paragraphLike int) float64 {
	var score float64
	if hasTitle {
		score += 0.2
	}

	lengthShare := float64(textLen) / float64(fullLengthText)
	if lengthShare > 1 {
		lengthShare = 1
	}
	score += 0.4 * lengthShare

	if len(blocks) > 0 {
		score += 0.4 * float64(paragraphLike) / float64(len(blocks))
	}

	return score
}

// firstText returns the trimmed text of the first matching selector.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := squish(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// squish collapses all whitespace runs to single spaces and trims.
func squish(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
