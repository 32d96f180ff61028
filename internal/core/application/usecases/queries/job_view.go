// Package queries contains read operations against the booking database.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly over SQL and never touch domain aggregates.
package queries

import (
	"database/sql"
	"time"

	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobView is the read model row shared by the job queries.
type JobView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	TranslatorID *kernel.UUID
	LanguageFrom string
	LanguageTo   string
	Region       string
	Status       string
	CreatedAt    time.Time
	DueAt        time.Time
	ExpiresAt    time.Time

	Distance     *float64
	TravelTime   *float64
	SessionTime  *float64
	AdminComment string
	Flagged      bool
	NoShow       bool
}

// jobViewColumns is the select list every job query scans with scanJobView.
// Columns are qualified so queries can join the translators table without
// ambiguity.
const jobViewColumns = `
	jobs.id,
	jobs.customer_id,
	jobs.translator_id,
	jobs.language_from,
	jobs.language_to,
	jobs.region,
	jobs.status,
	jobs.created_at,
	jobs.due_at,
	jobs.expires_at,
	jobs.distance,
	jobs.travel_time,
	jobs.session_time,
	jobs.admin_comment,
	jobs.flagged,
	jobs.no_show
`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanJobView scans the jobViewColumns select list, plus any extra columns
// a query appends after it.
func scanJobView(row rowScanner, extra ...any) (JobView, error) {
	var (
		view         JobView
		id           uuid.UUID
		customerID   uuid.UUID
		translatorID uuid.NullUUID
		distance     sql.NullFloat64
		travelTime   sql.NullFloat64
		sessionTime  sql.NullFloat64
	)

	dest := []any{
		&id,
		&customerID,
		&translatorID,
		&view.LanguageFrom,
		&view.LanguageTo,
		&view.Region,
		&view.Status,
		&view.CreatedAt,
		&view.DueAt,
		&view.ExpiresAt,
		&distance,
		&travelTime,
		&sessionTime,
		&view.AdminComment,
		&view.Flagged,
		&view.NoShow,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return JobView{}, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobView{}, err
	}
	view.ID = jobID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return JobView{}, err
	}
	view.CustomerID = custID

	if translatorID.Valid {
		tID, idErr := kernel.UUIDFromBytes(translatorID.UUID[:])
		if idErr != nil {
			return JobView{}, idErr
		}
		view.TranslatorID = &tID
	}

	if distance.Valid {
		view.Distance = &distance.Float64
	}
	if travelTime.Valid {
		view.TravelTime = &travelTime.Float64
	}
	if sessionTime.Valid {
		view.SessionTime = &sessionTime.Float64
	}

	return view, nil
}
