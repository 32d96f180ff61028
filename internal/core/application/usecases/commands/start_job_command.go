package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrStartJobCommandIsNotConstructed = errors.New(
		"StartJobCommand must be created via NewStartJobCommand constructor",
	)
)

// StartJobCommand marks the beginning of an assigned job's session.
type StartJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartJobCommand creates a command to start a job session.
func NewStartJobCommand(jobID kernel.UUID) (StartJobCommand, error) {
	cmd := StartJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return StartJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to start.
func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *StartJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
