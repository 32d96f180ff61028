// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Indexed by status and expiration instant so the expiration sweep and the
// pending-pool queries stay cheap.
type JobDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	TranslatorID *uuid.UUID `gorm:"type:uuid;index"`
	LanguageFrom string
	LanguageTo   string
	Region       string
	Status       string `gorm:"index:idx_jobs_status_expires_at"`
	CreatedAt    time.Time
	DueAt        time.Time
	ExpiresAt    time.Time `gorm:"index:idx_jobs_status_expires_at"`

	Distance        *float64
	TravelTime      *float64
	SessionTime     *float64
	AdminComment    string
	Flagged         bool
	ManuallyHandled bool
	ByAdmin         bool
	NoShow          bool

	Version int `gorm:"not null;default:0"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var translatorID *uuid.UUID
	if id := aggregate.Translator(); id != nil {
		raw := id.Bytes()
		translatorID = &raw
	}

	return JobDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		TranslatorID:    translatorID,
		LanguageFrom:    aggregate.LanguageFrom(),
		LanguageTo:      aggregate.LanguageTo(),
		Region:          aggregate.Region(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		DueAt:           aggregate.DueAt(),
		ExpiresAt:       aggregate.ExpiresAt(),
		Distance:        aggregate.Distance(),
		TravelTime:      aggregate.TravelTime(),
		SessionTime:     aggregate.SessionTime(),
		AdminComment:    aggregate.AdminComment(),
		Flagged:         aggregate.Flagged(),
		ManuallyHandled: aggregate.ManuallyHandled(),
		ByAdmin:         aggregate.ByAdmin(),
		NoShow:          aggregate.NoShow(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including bookkeeping metadata using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var translatorID *kernel.UUID
	if dto.TranslatorID != nil {
		tID, translatorErr := kernel.UUIDFromBytes((*dto.TranslatorID)[:])
		if translatorErr != nil {
			return nil, translatorErr
		}

		translatorID = &tID
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		customerID,
		translatorID,
		dto.LanguageFrom,
		dto.LanguageTo,
		dto.Region,
		status,
		dto.CreatedAt,
		dto.DueAt,
		dto.ExpiresAt,
		job.Metadata{
			Distance:        dto.Distance,
			TravelTime:      dto.TravelTime,
			SessionTime:     dto.SessionTime,
			AdminComment:    dto.AdminComment,
			Flagged:         dto.Flagged,
			ManuallyHandled: dto.ManuallyHandled,
			ByAdmin:         dto.ByAdmin,
			NoShow:          dto.NoShow,
		},
		dto.Version,
	)
}
