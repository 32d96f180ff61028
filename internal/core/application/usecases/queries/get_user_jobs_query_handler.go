package queries

import (
	"context"

	"booking/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetUserJobsQueryHandler retrieves a user's jobs from the database, split
// into the open workload and the finished history.
type GetUserJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserJobsQueryHandler creates a handler for user job list queries.
// Requires a GORM database connection for query execution.
func NewGetUserJobsQueryHandler(db *gorm.DB) GetUserJobsQueryHandler {
	return GetUserJobsQueryHandler{db: db}
}

// Handle executes the query. The user matches jobs both as customer and as
// assigned translator; results are ordered by due time.
func (h GetUserJobsQueryHandler) Handle(
	ctx context.Context,
	query GetUserJobsQuery,
) (GetUserJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserJobsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE jobs.customer_id = ? OR jobs.translator_id = ?
		ORDER BY jobs.due_at
	`, query.UserID().Bytes(), query.UserID().Bytes()).Rows()
	if err != nil {
		return GetUserJobsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetUserJobsQueryResponse{
		Active:  make([]JobView, 0),
		History: make([]JobView, 0),
	}

	for rows.Next() {
		view, scanErr := scanJobView(rows)
		if scanErr != nil {
			return GetUserJobsQueryResponse{}, scanErr
		}

		status, statusErr := job.StatusFromString(view.Status)
		if statusErr != nil {
			return GetUserJobsQueryResponse{}, statusErr
		}

		if status.IsTerminal() {
			response.History = append(response.History, view)
		} else {
			response.Active = append(response.Active, view)
		}
	}

	if err = rows.Err(); err != nil {
		return GetUserJobsQueryResponse{}, err
	}

	return response, nil
}
