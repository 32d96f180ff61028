package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrGetJobQueryIsNotConstructed = errors.New(
		"GetJobQuery must be created via NewGetJobQuery constructor",
	)
)

// GetJobQuery retrieves a single job with its assigned translator's contact
// details, when a translator is attached.
//
// Example:
//
//	query, _ := NewGetJobQuery(jobID)
//	handler := NewGetJobQueryHandler(db)
//
//	jobDetail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get job: %w", err)
//	}
type GetJobQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for a single job's detail view.
func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobQuery{}, err
	}

	return GetJobQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the identifier of the requested job.
func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetJobQueryResponse is the job detail view, including the assigned
// translator's name and phone number when one is attached.
type GetJobQueryResponse struct {
	Job JobView

	TranslatorName  string
	TranslatorPhone string
}
