package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrReopenJobCommandIsNotConstructed = errors.New(
		"ReopenJobCommand must be created via NewReopenJobCommand constructor",
	)
)

// ReopenJobCommand puts a finished job back on the market. NewDueAt is
// optional; when nil the original session time is kept.
type ReopenJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	newDueAt *time.Time

	guard guard.ConstructorGuard
}

// NewReopenJobCommand creates a command to reopen a terminal job.
func NewReopenJobCommand(jobID kernel.UUID, newDueAt *time.Time) (ReopenJobCommand, error) {
	cmd := ReopenJobCommand{
		newDueAt: newDueAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return ReopenJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenJobCommand) Validate() error {
	return c.guard.Validate(ErrReopenJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to reopen.
func (c ReopenJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// NewDueAt returns the replacement session time, if any.
func (c ReopenJobCommand) NewDueAt() *time.Time {
	return c.newDueAt
}

func (c *ReopenJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
