package job

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct booking workflow.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a new booking.
	// Pending jobs are waiting for a translator to accept them and are the
	// only jobs the expiration sweep may expire.
	Pending

	// Assigned indicates a translator has accepted the job.
	Assigned

	// InProgress indicates the booked session has started.
	InProgress

	// Completed indicates the session has ended. Terminal unless reopened.
	Completed

	// Cancelled indicates the booking was withdrawn before completion.
	// Terminal unless reopened.
	Cancelled

	// Expired indicates no translator accepted the job before its
	// expiration instant. Terminal unless reopened.
	Expired
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Expired:    "expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Expired:    "expired",
	}
}

// StatusFromString parses the persisted or wire representation of a status.
// Ad hoc status strings from the boundary are normalized here; anything
// outside the closed enum is rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, InProgress, Completed, Cancelled, Expired.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the lifecycle.
// Terminal jobs can only leave their state through Reopen.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Expired
}

// ValidateCanHaveTranslator validates the consistency between job status and
// translator assignment.
//
// Business rules:
//   - Pending, Cancelled and Expired jobs must not have a translator
//   - Assigned, InProgress and Completed jobs must have a translator
func (s Status) ValidateCanHaveTranslator(translator bool) error {
	requiresTranslator := s == Assigned || s == InProgress || s == Completed

	if translator && !requiresTranslator {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a translator", s.String()),
		)
	}

	if !translator && requiresTranslator {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no translator", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Every other source state loses the acceptance race or is simply not
// acceptable, and is reported as a conflict.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"already assigned",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}

// Start transitions the status to InProgress when the booked session begins.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewConflictErrorWithCause(
			"job is not assigned",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (session ended)
//   - Assigned -> Completed (session ended before it was marked started)
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewConflictErrorWithCause(
			"job cannot be ended",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewConflictErrorWithCause(
			"job cannot be cancelled",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Pending -> Expired
//
// Expiring a job in any other state is a conflict: the expiration sweep
// treats that as "the job was taken first" and skips it.
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"job is not pending",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}

// Reopen transitions a terminal status back to Pending.
//
// Valid transitions:
//   - Completed -> Pending
//   - Cancelled -> Pending
//   - Expired -> Pending
func (s Status) Reopen() (Status, error) {
	if !s.IsTerminal() {
		return 0, errs.NewConflictErrorWithCause(
			"job cannot be reopened",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}

	return Pending, nil
}
