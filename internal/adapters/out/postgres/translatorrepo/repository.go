package translatorrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTranslatorRepository implements TranslatorRepository using GORM.
// The booking core treats translators as read-only; Upsert exists for the
// sync feed from the user-management service and for test seeding.
type GormTranslatorRepository struct {
	db *gorm.DB
}

// NewGormTranslatorRepository creates a new GORM translator repository.
func NewGormTranslatorRepository(db *gorm.DB) *GormTranslatorRepository {
	return &GormTranslatorRepository{db: db}
}

// Upsert writes a translator row, replacing any previous state for the same
// identifier.
func (r *GormTranslatorRepository) Upsert(ctx context.Context, t *translator.Translator, active bool) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t, active)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Get retrieves a translator by ID.
func (r *GormTranslatorRepository) Get(ctx context.Context, id kernel.UUID) (*translator.Translator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TranslatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("translator", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every translator eligible to receive work.
func (r *GormTranslatorRepository) GetAllActive(ctx context.Context) ([]*translator.Translator, error) {
	var dtos []TranslatorDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	translators := make([]*translator.Translator, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		translators = append(translators, t)
	}

	return translators, nil
}
