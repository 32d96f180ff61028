package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
)

// TranslatorRepository defines the read contract for translator entities.
// Translators are owned by an external user-management service; the booking
// core only reads the capability attributes it needs for matching and
// notification dispatch.
type TranslatorRepository interface {
	// Get retrieves a translator by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*translator.Translator, error)

	// GetAllActive retrieves the full population of translators eligible to
	// receive work. The matcher narrows this population per job.
	GetAllActive(ctx context.Context) ([]*translator.Translator, error)
}
