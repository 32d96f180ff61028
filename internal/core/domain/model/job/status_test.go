package job_test

import (
	"testing"

	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []job.Status{
			job.Pending, job.Assigned, job.InProgress,
			job.Completed, job.Cancelled, job.Expired,
		}

		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, job.Unknown.Validate())
		require.Error(t, job.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := map[job.Status]string{
		job.Unknown:    "unknown",
		job.Pending:    "pending",
		job.Assigned:   "assigned",
		job.InProgress: "in_progress",
		job.Completed:  "completed",
		job.Cancelled:  "cancelled",
		job.Expired:    "expired",
	}

	for status, expected := range testCases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "unknown", job.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		for _, name := range []string{"pending", "assigned", "in_progress", "completed", "cancelled", "expired"} {
			status, err := job.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject ad hoc status strings", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Pending", "open", "yes"} {
			_, err := job.StatusFromString(name)

			require.Error(t, err, name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, job.Completed.IsTerminal())
	assert.True(t, job.Cancelled.IsTerminal())
	assert.True(t, job.Expired.IsTerminal())

	assert.False(t, job.Pending.IsTerminal())
	assert.False(t, job.Assigned.IsTerminal())
	assert.False(t, job.InProgress.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("assign succeeds only from pending", func(t *testing.T) {
		next, err := job.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, job.Assigned, next)

		for _, s := range []job.Status{job.Assigned, job.InProgress, job.Completed, job.Cancelled, job.Expired} {
			_, err := s.Assign()
			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrConflict)
		}
	})

	t.Run("start succeeds only from assigned", func(t *testing.T) {
		next, err := job.Assigned.Start()
		require.NoError(t, err)
		assert.Equal(t, job.InProgress, next)

		for _, s := range []job.Status{job.Pending, job.InProgress, job.Completed, job.Cancelled, job.Expired} {
			_, err := s.Start()
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})

	t.Run("complete succeeds from assigned and in_progress", func(t *testing.T) {
		for _, s := range []job.Status{job.Assigned, job.InProgress} {
			next, err := s.Complete()
			require.NoError(t, err, s.String())
			assert.Equal(t, job.Completed, next)
		}

		for _, s := range []job.Status{job.Pending, job.Completed, job.Cancelled, job.Expired} {
			_, err := s.Complete()
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})

	t.Run("cancel succeeds from pending and assigned", func(t *testing.T) {
		for _, s := range []job.Status{job.Pending, job.Assigned} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, job.Cancelled, next)
		}

		for _, s := range []job.Status{job.InProgress, job.Completed, job.Cancelled, job.Expired} {
			_, err := s.Cancel()
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})

	t.Run("expire succeeds only from pending", func(t *testing.T) {
		next, err := job.Pending.Expire()
		require.NoError(t, err)
		assert.Equal(t, job.Expired, next)

		for _, s := range []job.Status{job.Assigned, job.InProgress, job.Completed, job.Cancelled, job.Expired} {
			_, err := s.Expire()
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})

	t.Run("reopen succeeds only from terminal statuses", func(t *testing.T) {
		for _, s := range []job.Status{job.Completed, job.Cancelled, job.Expired} {
			next, err := s.Reopen()
			require.NoError(t, err, s.String())
			assert.Equal(t, job.Pending, next)
		}

		for _, s := range []job.Status{job.Pending, job.Assigned, job.InProgress} {
			_, err := s.Reopen()
			assert.ErrorIs(t, err, errs.ErrConflict, s.String())
		}
	})
}

func TestStatus_ValidateCanHaveTranslator(t *testing.T) {
	t.Run("engaged statuses require a translator", func(t *testing.T) {
		for _, s := range []job.Status{job.Assigned, job.InProgress, job.Completed} {
			assert.NoError(t, s.ValidateCanHaveTranslator(true), s.String())
			assert.Error(t, s.ValidateCanHaveTranslator(false), s.String())
		}
	})

	t.Run("unassigned statuses must not have a translator", func(t *testing.T) {
		for _, s := range []job.Status{job.Pending, job.Cancelled, job.Expired} {
			assert.NoError(t, s.ValidateCanHaveTranslator(false), s.String())
			assert.Error(t, s.ValidateCanHaveTranslator(true), s.String())
		}
	})
}
