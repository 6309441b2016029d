package jobscan_test

import (
	"testing"

	"github.com/fwojciec/jobscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("splits paragraphs on blank lines", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("About the role\n\nYou will build backend services.")

		require.Len(t, got.Paragraphs, 2)
		assert.Equal(t, "About the role", got.Paragraphs[0])
		assert.Equal(t, "You will build backend services.", got.Paragraphs[1])
		assert.Equal(t, "About the role\n\nYou will build backend services.", got.Text)
	})

	t.Run("collapses horizontal whitespace", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("You  will \t build backend   services.")

		assert.Equal(t, "You will build backend services.", got.Text)
	})

	t.Run("normalizes CRLF line endings", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("First paragraph here.\r\n\r\nSecond paragraph here.")

		require.Len(t, got.Paragraphs, 2)
		assert.Equal(t, "First paragraph here.", got.Paragraphs[0])
	})

	t.Run("strips residual markup", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("<div>Design and build <b>distributed</b> systems.</div>")

		assert.Equal(t, "Design and build distributed systems.", got.Text)
	})

	t.Run("strips leading bullet glyphs", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("• Build APIs in production\n- Ship code to customers\n* Review designs with peers")

		require.Len(t, got.Paragraphs, 1)
		assert.Equal(t, "Build APIs in production\nShip code to customers\nReview designs with peers", got.Paragraphs[0])
	})

	t.Run("drops cookie banner lines", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("We use cookies to improve your experience.\n\nYou will design data pipelines.")

		require.Len(t, got.Paragraphs, 1)
		assert.Equal(t, "You will design data pipelines.", got.Paragraphs[0])
	})

	t.Run("drops apply call to action without splitting the paragraph", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("We build resilient data systems.\nApply now\nOur stack runs on Kubernetes.")

		require.Len(t, got.Paragraphs, 1)
		assert.Equal(t, "We build resilient data systems.\nOur stack runs on Kubernetes.", got.Paragraphs[0])
	})

	t.Run("drops legal footer lines", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("You will lead the platform team.\n\n© 2025 Acme Corp\nAll rights reserved.")

		require.Len(t, got.Paragraphs, 1)
		assert.Equal(t, "You will lead the platform team.", got.Paragraphs[0])
	})

	t.Run("drops one and two character lines", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("x\nab\nSomething with actual content here.")

		assert.Equal(t, "Something with actual content here.", got.Text)
	})

	t.Run("treats punctuation only lines as paragraph breaks", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("First section of the posting.\n---\nSecond section of the posting.")

		require.Len(t, got.Paragraphs, 2)
		assert.Equal(t, "First section of the posting.", got.Paragraphs[0])
		assert.Equal(t, "Second section of the posting.", got.Paragraphs[1])
	})

	t.Run("returns empty content for pure boilerplate", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("Accept all cookies\nSign in\nPrivacy policy\nShare this job")

		assert.Empty(t, got.Text)
		assert.Empty(t, got.Paragraphs)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"• Responsibilities include:\n- Building APIs\n- Reviewing code\n\nApply now!\n\nWe offer great benefits to everyone.",
			"<p>Backend role at a growing company.</p>\r\n\r\nWe use cookies on this site.\nReal second paragraph content.",
			"Plain paragraph one.\n\nPlain paragraph two.",
		}

		for _, input := range inputs {
			once := jobscan.Clean(input)
			twice := jobscan.Clean(once.Text)
			assert.Equal(t, once, twice)
		}
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		got := jobscan.Clean("")

		assert.Empty(t, got.Text)
		assert.Empty(t, got.Paragraphs)
	})
}
