package jobscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/jobscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()

		err := jobscan.Errorf(jobscan.EBLOCKED, "request blocked with status %d", 403)

		assert.Equal(t, jobscan.EBLOCKED, jobscan.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("extract: %w", jobscan.Errorf(jobscan.ETIMEOUT, "deadline exceeded"))

		assert.Equal(t, jobscan.ETIMEOUT, jobscan.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, jobscan.EINTERNAL, jobscan.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", jobscan.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()

		err := jobscan.Errorf(jobscan.ENOCONTENT, "extracted only 42 characters")

		assert.Equal(t, "extracted only 42 characters", jobscan.ErrorMessage(err))
	})

	t.Run("hides non application error details", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", jobscan.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", jobscan.ErrorMessage(nil))
	})
}
