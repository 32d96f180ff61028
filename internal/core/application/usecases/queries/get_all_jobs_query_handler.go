package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllJobsQueryHandler retrieves the admin job list from the database.
type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllJobsQueryHandler creates a handler for admin job list queries.
// Requires a GORM database connection for query execution.
func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle executes the query. Results are newest first.
func (h GetAllJobsQueryHandler) Handle(ctx context.Context, query GetAllJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + jobViewColumns + `
		FROM jobs
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Status() != "" {
		sql += " AND jobs.status = ?"
		args = append(args, query.Status())
	}
	if query.Region() != "" {
		sql += " AND jobs.region = ?"
		args = append(args, query.Region())
	}

	sql += " ORDER BY jobs.created_at DESC LIMIT ?"
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobView, 0)
	for rows.Next() {
		view, scanErr := scanJobView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
