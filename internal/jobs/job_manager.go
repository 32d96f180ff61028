package jobs

import (
	"fmt"
	"log/slog"

	"booking/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expirationSweepJob *ExpirationSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepExpirationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expirationSweepJob: NewExpirationSweepJob(sweepHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.expirationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start expiration sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, letting in-flight runs
// complete.
func (jm *JobManager) StopAll() {
	jm.expirationSweepJob.Stop()
}
