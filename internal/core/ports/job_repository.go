// Package ports defines repository interfaces for the booking domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
//
// Update is the concurrency guard of the whole lifecycle: it persists the
// aggregate only if the stored version still equals the version the
// aggregate was loaded with, and bumps the version on success. Two racing
// transitions on the same job therefore resolve to exactly one winner; the
// loser receives a conflict and must re-read.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate under the
	// optimistic version guard. Returns a conflict error (errs.ErrConflict)
	// when the stored version has moved on, and a not-found error when the
	// job no longer exists.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllExpiredPending retrieves every pending job whose expiration
	// instant is at or before now. Used by the expiration sweep.
	GetAllExpiredPending(ctx context.Context, now time.Time) ([]*job.Job, error)

	// GetAllPending retrieves every pending job, ordered by due time.
	// Used to compute the potential-job list for a translator.
	GetAllPending(ctx context.Context) ([]*job.Job, error)
}
