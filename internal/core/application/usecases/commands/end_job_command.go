package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrEndJobCommandIsNotConstructed = errors.New(
		"EndJobCommand must be created via NewEndJobCommand constructor",
	)
)

// EndJobCommand completes a job's session. NoShow records that the customer
// never turned up; the job still completes so the translator's time is kept
// on the books.
type EndJobCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	noShow bool

	guard guard.ConstructorGuard
}

// NewEndJobCommand creates a command to end a job session.
func NewEndJobCommand(jobID kernel.UUID, noShow bool) (EndJobCommand, error) {
	cmd := EndJobCommand{
		noShow: noShow,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return EndJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndJobCommand) Validate() error {
	return c.guard.Validate(ErrEndJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to complete.
func (c EndJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// NoShow reports whether the session ended without the customer appearing.
func (c EndJobCommand) NoShow() bool {
	return c.noShow
}

func (c *EndJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
