package jobscan

import (
	"regexp"
	"sort"
	"strings"
)

// KeywordEntry is one ranked ATS keyword. Entries are returned in rank
// order: descending frequency, ties broken by first occurrence in the text.
type KeywordEntry struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
	Rank      int    `json:"rank"`
}

// stopwords are filtered from keyword ranking. Beyond ordinary function
// words, this includes job-posting filler ("candidate", "excellent",
// "proven") that carries no resume-matching signal.
var stopwords = map[string]bool{}

// preserveTerms are short or stopword-shaped tokens that are nevertheless
// real technical skills and must survive filtering.
var preserveTerms = map[string]bool{}

func init() {
	for _, w := range strings.Fields(
		`the a an and or but in on at to for of with by from as is are was
		were be been being have has had do does did will would could should
		may might must shall can need this that these those i you he she it
		we they what which who whom whose where when why how all each every
		both few more most other some such no nor not only own same so than
		too very just also now here there then if else about into through
		during before after above below between under over again further
		once any our your their its my his her up down out off while because
		until unless although though since whether either neither yet still
		already even ever never always often sometimes usually really quite
		rather well back way work working including etc within across along
		around among beside besides beyond upon without according able
		ability experience required requirements role position job candidate
		candidates team company looking join seeking strong excellent good
		great proven solid preferred plus ideal minimum years year
		responsibilities qualifications skills knowledge understanding
		familiar familiarity proficiency proficient benefits opportunity
		about apply location salary what make help want like new get one per
		day offer offers us level based using use used ensure provide`) {
		stopwords[w] = true
	}
	for _, w := range []string{
		"python", "java", "javascript", "typescript", "react", "angular",
		"vue", "node", "sql", "nosql", "mongodb", "postgresql", "mysql",
		"redis", "elasticsearch", "aws", "azure", "gcp", "docker",
		"kubernetes", "ci/cd", "git", "github", "gitlab", "api", "rest",
		"graphql", "grpc", "microservices", "agile", "scrum", "devops",
		"mlops", "machine learning", "deep learning", "ai", "nlp",
		"tensorflow", "pytorch", "pandas", "numpy", "spark", "hadoop",
		"kafka", "linux", "unix", "bash", "terraform", "ansible", "jenkins",
		"html", "css", "sass", "webpack", "npm", "maven", "gradle", "spring",
		"django", "flask", "fastapi", "express", "rails", "laravel",
		"dotnet", "c#", "c++", "go", "golang", "rust", "scala", "kotlin",
		"swift", "r", "matlab", "tableau", "dbt", "snowflake", "databricks",
		"airflow", "jira", "confluence", "figma", "b2b", "b2c", "saas",
		"erp", "crm", "cms", "sdk", "cli", "oop", "tdd", "mvc", "spa",
		"seo", "kpi", "okr", "roi", "etl", "olap",
	} {
		preserveTerms[w] = true
	}
}

// wordRe matches a single keyword token: a letter followed by letters,
// digits, or the symbol characters common in skill names (c++, c#, ci/cd,
// node.js).
var wordRe = regexp.MustCompile(`[a-z][a-z0-9+#/.]*`)

// RankKeywords computes the frequency-ranked ATS keyword list for cleaned
// posting text. Tokens are case-normalized words and two-word phrases;
// stopwords are removed unless they are known technical terms. At most
// maxTerms entries are returned, each with frequency >= minCount, sorted by
// descending frequency with ties broken by first occurrence in the text.
func RankKeywords(text string, maxTerms, minCount int) []KeywordEntry {
	if maxTerms <= 0 {
		return nil
	}
	if minCount < 1 {
		minCount = 1
	}

	words := wordRe.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	firstPos := make(map[string]int)

	record := func(term string, pos int) {
		freq[term]++
		if _, seen := firstPos[term]; !seen {
			firstPos[term] = pos
		}
	}

	for i, w := range words {
		w = strings.Trim(w, "./")
		if keepSingle(w) {
			record(w, i)
		}
	}

	// Two-word phrases where neither word is filler ("machine learning",
	// "project management").
	for i := 0; i+1 < len(words); i++ {
		a, b := strings.Trim(words[i], "./"), strings.Trim(words[i+1], "./")
		if len(a) < 3 || len(b) < 3 || stopwords[a] || stopwords[b] {
			continue
		}
		record(a+" "+b, i)
	}

	terms := make([]string, 0, len(freq))
	for term, n := range freq {
		if n >= minCount {
			terms = append(terms, term)
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return firstPos[terms[i]] < firstPos[terms[j]]
	})

	if len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}

	entries := make([]KeywordEntry, len(terms))
	for i, term := range terms {
		entries[i] = KeywordEntry{Term: term, Frequency: freq[term], Rank: i + 1}
	}
	return entries
}

// keepSingle reports whether a single-word token should be counted.
func keepSingle(w string) bool {
	if preserveTerms[w] {
		return true
	}
	return len(w) > 2 && !stopwords[w]
}
