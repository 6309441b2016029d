package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/jobscan"
	"github.com/fwojciec/jobscan/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content from a document", func(t *testing.T) {
		t.Parallel()

		paragraph := "We are hiring a backend engineer to design, build, and operate the distributed services behind our product. "
		html := `<html><head><title>Backend Engineer at Acme</title></head><body>
			<nav><a href="/">Home</a><a href="/careers">Careers</a></nav>
			<main><article>
				<h1>Backend Engineer</h1>
				<p>` + strings.Repeat(paragraph, 3) + `</p>
				<p>` + strings.Repeat(paragraph, 3) + `</p>
			</article></main>
			<footer>© 2025 Acme Corp</footer>
		</body></html>`

		parser := trafilatura.NewParser()
		candidate, err := parser.Parse(html)

		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Equal(t, jobscan.SourceFallback, candidate.Source)
		assert.InDelta(t, 0.5, candidate.Confidence, 0.001)
		assert.Contains(t, candidate.RawText, "backend engineer")
	})

	t.Run("never returns a nil candidate", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"not html at all",
			"<html><body></body></html>",
			"<div>We use cookies. <a href='#'>Accept</a></div>",
			"<<<>>><html<body",
		}

		parser := trafilatura.NewParser()
		for _, input := range inputs {
			candidate, err := parser.Parse(input)

			require.NoError(t, err)
			require.NotNil(t, candidate)
			assert.Equal(t, jobscan.SourceFallback, candidate.Source)
		}
	})

	t.Run("degrades to tag stripped text", func(t *testing.T) {
		t.Parallel()

		// Too thin for content extraction, so the raw text nodes come back.
		html := "<div><span>Cookie notice.</span><script>var x = 1;</script></div>"

		parser := trafilatura.NewParser()
		candidate, err := parser.Parse(html)

		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Contains(t, candidate.RawText, "Cookie notice.")
		assert.NotContains(t, candidate.RawText, "var x")
	})
}
