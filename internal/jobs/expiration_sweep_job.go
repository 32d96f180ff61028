package jobs

import (
	"context"
	"log/slog"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpirationSweepJob periodically expires pending jobs whose expiration
// instant has passed. Runs every 30 seconds.
type ExpirationSweepJob struct {
	handler commands.SweepExpirationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpirationSweepJob creates the sweep job around the sweep command
// handler.
func NewExpirationSweepJob(handler commands.SweepExpirationsCommandHandler, logger *slog.Logger) *ExpirationSweepJob {
	return &ExpirationSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "expiration_sweep_job"),
	}
}

// Start schedules the sweep to run every 30 seconds.
func (j *ExpirationSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepExpirationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Expiration sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiration sweep job started (running every 30 seconds)")
	return nil
}

// Stop stops scheduling new sweeps and waits for an in-flight sweep to
// finish.
func (j *ExpirationSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expiration sweep job stopped")
}
