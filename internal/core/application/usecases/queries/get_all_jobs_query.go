package queries

import (
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/guard"
)

var (
	ErrGetAllJobsQueryIsNotConstructed = errors.New(
		"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
	)
)

// GetAllJobsQuery retrieves the full job list for the admin console, with
// optional narrowing by status and region.
//
// Example:
//
//	query, _ := NewGetAllJobsQuery("pending", "", 100)
//	handler := NewGetAllJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
type GetAllJobsQuery struct {
	status string
	region string
	limit  int

	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates an admin job list query. Empty status or region
// means no filter on that column; a non-positive limit selects the default
// page size.
func NewGetAllJobsQuery(status, region string, limit int) (GetAllJobsQuery, error) {
	if status != "" {
		if _, err := job.StatusFromString(status); err != nil {
			return GetAllJobsQuery{}, err
		}
	}

	if limit <= 0 {
		limit = 200
	}

	return GetAllJobsQuery{
		status: status,
		region: region,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filter.
func (q GetAllJobsQuery) Status() string {
	return q.status
}

// Region returns the region filter, empty for no filter.
func (q GetAllJobsQuery) Region() string {
	return q.region
}

// Limit returns the page size.
func (q GetAllJobsQuery) Limit() int {
	return q.limit
}
