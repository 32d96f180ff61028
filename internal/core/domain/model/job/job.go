package job

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created through
	// the NewJob or RestoreJob factory methods. This ensures all jobs are properly validated.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")
)

// Job represents a bookable unit of interpretation work. It is the aggregate
// root that manages the booking lifecycle from creation through translator
// assignment to completion.
//
// Job follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Due time is strictly after creation time
//   - Expiration instant is derived from the due and creation times and is
//     recomputed whenever the due time changes (reopen)
//   - A translator reference is present exactly in the assigned, in_progress
//     and completed states
//   - Status transitions follow the rules encoded in Status
//   - Can only be created through NewJob or RestoreJob
//
// The version field supports optimistic concurrency: repositories persist a
// job only if the stored version still matches, so two racing transitions on
// the same job can never both win.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// customerID references the customer who booked the job
	customerID kernel.UUID

	// translatorID is the accepted translator's ID (nil until assigned)
	translatorID *kernel.UUID

	// languageFrom and languageTo form the required language pair
	languageFrom string
	languageTo   string

	// region is the service region the translator must cover
	region string

	// status represents the current state in the job lifecycle
	status Status

	createdAt time.Time
	dueAt     time.Time
	expiresAt time.Time

	// metadata fields, maintained by the distance feed
	distance        *float64
	travelTime      *float64
	sessionTime     *float64
	adminComment    string
	flagged         bool
	manuallyHandled bool
	byAdmin         bool
	noShow          bool

	// version is the optimistic concurrency token managed by repositories
	version int

	// isConstructed ensures the job was created via a factory method
	isConstructed bool
}

// NewJob creates a new Job in pending status with validation.
// The due time must be strictly after now; the expiration instant is computed
// from the due and creation times via WillExpireAt.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	j, err := job.NewJob(jobID, customerID, "en", "sv", "stockholm", dueAt, time.Now())
//	if err != nil {
//	    // handle validation error
//	}
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	languageFrom string,
	languageTo string,
	region string,
	dueAt time.Time,
	now time.Time,
) (*Job, error) {
	j := &Job{
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setLanguagePair(languageFrom, languageTo),
		j.setRegion(region),
	); err != nil {
		return nil, err
	}

	if err := j.setDueAt(dueAt, now); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persistence without re-running creation
// rules. The stored state is assumed to have been valid when written; only
// structural consistency is re-checked.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	translatorID *kernel.UUID,
	languageFrom string,
	languageTo string,
	region string,
	status Status,
	createdAt time.Time,
	dueAt time.Time,
	expiresAt time.Time,
	metadata Metadata,
	version int,
) (*Job, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
		status.ValidateCanHaveTranslator(translatorID != nil),
	); err != nil {
		return nil, err
	}

	return &Job{
		id:              id,
		customerID:      customerID,
		translatorID:    translatorID,
		languageFrom:    languageFrom,
		languageTo:      languageTo,
		region:          region,
		status:          status,
		createdAt:       createdAt,
		dueAt:           dueAt,
		expiresAt:       expiresAt,
		distance:        metadata.Distance,
		travelTime:      metadata.TravelTime,
		sessionTime:     metadata.SessionTime,
		adminComment:    metadata.AdminComment,
		flagged:         metadata.Flagged,
		manuallyHandled: metadata.ManuallyHandled,
		byAdmin:         metadata.ByAdmin,
		noShow:          metadata.NoShow,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Metadata bundles the bookkeeping fields restored from persistence.
type Metadata struct {
	Distance        *float64
	TravelTime      *float64
	SessionTime     *float64
	AdminComment    string
	Flagged         bool
	ManuallyHandled bool
	ByAdmin         bool
	NoShow          bool
}

// Validate ensures the Job instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the booking customer's identifier.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// Translator returns the accepted translator's ID.
// Returns nil if no translator has accepted the job.
func (j *Job) Translator() *kernel.UUID {
	return j.translatorID
}

// LanguageFrom returns the source language of the required pair.
func (j *Job) LanguageFrom() string {
	return j.languageFrom
}

// LanguageTo returns the target language of the required pair.
func (j *Job) LanguageTo() string {
	return j.languageTo
}

// Region returns the service region of the booking.
func (j *Job) Region() string {
	return j.region
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// CreatedAt returns the creation instant of the booking.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// DueAt returns the booked session start time.
func (j *Job) DueAt() time.Time {
	return j.dueAt
}

// ExpiresAt returns the instant after which an unaccepted job is abandoned.
func (j *Job) ExpiresAt() time.Time {
	return j.expiresAt
}

// Distance returns the travel distance recorded by the distance feed, if any.
func (j *Job) Distance() *float64 {
	return j.distance
}

// TravelTime returns the recorded travel time in minutes, if any.
func (j *Job) TravelTime() *float64 {
	return j.travelTime
}

// SessionTime returns the recorded session duration in minutes, if any.
func (j *Job) SessionTime() *float64 {
	return j.sessionTime
}

// AdminComment returns the administrative comment attached to the job.
func (j *Job) AdminComment() string {
	return j.adminComment
}

// Flagged reports whether an administrator flagged the job.
func (j *Job) Flagged() bool {
	return j.flagged
}

// ManuallyHandled reports whether the job was handled manually by support.
func (j *Job) ManuallyHandled() bool {
	return j.manuallyHandled
}

// ByAdmin reports whether the last metadata update was made by an administrator.
func (j *Job) ByAdmin() bool {
	return j.byAdmin
}

// NoShow reports whether the customer failed to appear for the session.
func (j *Job) NoShow() bool {
	return j.noShow
}

// Version returns the optimistic concurrency token of the loaded aggregate.
func (j *Job) Version() int {
	return j.version
}

// Assign records a translator's acceptance of the job.
//
// This is the contended transition: multiple translators may race to accept
// the same pending job. The in-memory check here enforces the state rules;
// the repository's version guard makes the whole read-transition-write cycle
// atomic, so at most one racing caller ever persists the assignment. Losers
// surface a conflict ("already assigned").
func (j *Job) Assign(translatorID kernel.UUID) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}

	if j.translatorID != nil {
		return errs.NewConflictError("already assigned")
	}

	newStatus, err := j.status.Assign()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = &translatorID
	return nil
}

// Start marks the booked session as started.
// Allowed only for assigned jobs.
func (j *Job) Start() error {
	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Complete marks the job as completed.
// Allowed from in_progress, or directly from assigned when the session is
// ended without an explicit start.
func (j *Job) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Cancel withdraws the booking.
// Allowed only from pending or assigned; any terminal state is a conflict.
func (j *Job) Cancel() error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Expire abandons a pending job whose expiration instant has passed.
// A job in any other state is reported as a conflict so the expiration
// sweep can skip jobs that were accepted concurrently.
func (j *Job) Expire(now time.Time) error {
	if now.Before(j.expiresAt) {
		return errs.NewConflictErrorWithCause(
			"job is not expired yet",
			fmt.Errorf("expires at %s", j.expiresAt.Format(time.RFC3339)),
		)
	}

	newStatus, err := j.status.Expire()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// MarkNoShow records that the customer failed to appear.
// The flag is allowed only while a translator is engaged (assigned or
// in_progress); the follow-up status transition is a separate call.
func (j *Job) MarkNoShow() error {
	if j.status != Assigned && j.status != InProgress {
		return errs.NewConflictErrorWithCause(
			"job is not active",
			fmt.Errorf("%s is not a valid status to record a no-show", j.status.String()),
		)
	}

	j.noShow = true
	return nil
}

// Reopen returns a terminal job to pending.
//
// The translator reference is cleared, the no-show flag is reset, and the
// expiration instant is recomputed via WillExpireAt using the new due time
// (or the original one when newDueAt is nil) against now.
func (j *Job) Reopen(newDueAt *time.Time, now time.Time) error {
	newStatus, err := j.status.Reopen()
	if err != nil {
		return err
	}

	dueAt := j.dueAt
	if newDueAt != nil {
		dueAt = *newDueAt
	}

	expiresAt, err := WillExpireAt(dueAt, now)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = nil
	j.noShow = false
	j.dueAt = dueAt
	j.expiresAt = expiresAt
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	j.customerID = customerID
	return nil
}

func (j *Job) setLanguagePair(from, to string) error {
	if from == "" {
		return errs.NewValueIsRequiredError("languageFrom")
	}
	if to == "" {
		return errs.NewValueIsRequiredError("languageTo")
	}
	j.languageFrom = from
	j.languageTo = to
	return nil
}

func (j *Job) setRegion(region string) error {
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	j.region = region
	return nil
}

func (j *Job) setDueAt(dueAt, now time.Time) error {
	if dueAt.IsZero() {
		return errs.NewValueIsRequiredError("dueAt")
	}

	expiresAt, err := WillExpireAt(dueAt, now)
	if err != nil {
		return err
	}

	j.dueAt = dueAt
	j.expiresAt = expiresAt
	return nil
}
