package commands

import (
	"errors"

	"booking/internal/pkg/guard"
)

var (
	ErrSweepExpirationsCommandIsNotConstructed = errors.New(
		"SweepExpirationsCommand must be created via NewSweepExpirationsCommand constructor",
	)
)

// SweepExpirationsCommand triggers expiration of every pending job whose
// acceptance window has closed. This batch operation runs on a schedule.
//
// Example:
//
//	cmd := NewSweepExpirationsCommand()
//	handler := NewSweepExpirationsCommandHandler(uowFactory)
//
//	// Run periodically from the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Expiration sweep failed: %v", err)
//	}
type SweepExpirationsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpirationsCommand creates a command to expire overdue pending jobs.
// This is a parameterless command that processes the whole pending pool.
func NewSweepExpirationsCommand() SweepExpirationsCommand {
	command := SweepExpirationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepExpirationsCommandIsNotConstructed if validation fails.
func (c *SweepExpirationsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpirationsCommandIsNotConstructed)
}
