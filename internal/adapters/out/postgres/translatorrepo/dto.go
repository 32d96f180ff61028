// Package translatorrepo provides data transfer objects and mapping functions
// for translator persistence. Translators are mastered by the user-management
// service; this repository holds the read model the matcher works against.
package translatorrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"

	"github.com/google/uuid"
)

// LanguagePairDTO is one directional language pair in the jsonb column.
type LanguagePairDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// LanguagePairsDTO stores the pair list as a jsonb document.
type LanguagePairsDTO []LanguagePairDTO

func (p LanguagePairsDTO) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *LanguagePairsDTO) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported language pairs column type %T", value)
		}
	}
	return json.Unmarshal(raw, p)
}

// AvailabilityDTO is one availability window in the jsonb column.
type AvailabilityDTO struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// AvailabilitiesDTO stores the availability windows as a jsonb document.
type AvailabilitiesDTO []AvailabilityDTO

func (a AvailabilitiesDTO) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AvailabilitiesDTO) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported availability column type %T", value)
		}
	}
	return json.Unmarshal(raw, a)
}

// TranslatorDTO represents the database structure for persisting translators.
type TranslatorDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name          string
	LanguagePairs LanguagePairsDTO  `gorm:"type:jsonb"`
	Region        string            `gorm:"index"`
	Rating        float64
	Availability  AvailabilitiesDTO `gorm:"type:jsonb"`
	PushEnabled   bool
	PhoneNumber   string
	Active        bool `gorm:"index"`
}

// TableName specifies the database table name for translator entities.
func (TranslatorDTO) TableName() string {
	return "translators"
}

// fromDomain converts a translator entity to its database representation.
// Stored translators are active; deactivation happens upstream and arrives
// as an update to the Active column.
func fromDomain(t *translator.Translator, active bool) TranslatorDTO {
	pairs := make(LanguagePairsDTO, 0, len(t.LanguagePairs()))
	for _, pair := range t.LanguagePairs() {
		pairs = append(pairs, LanguagePairDTO{From: pair.From, To: pair.To})
	}

	windows := make(AvailabilitiesDTO, 0, len(t.Availability()))
	for _, w := range t.Availability() {
		windows = append(windows, AvailabilityDTO{From: w.From, To: w.To})
	}

	return TranslatorDTO{
		ID:            t.ID().Bytes(),
		Name:          t.Name(),
		LanguagePairs: pairs,
		Region:        t.Region(),
		Rating:        t.Rating(),
		Availability:  windows,
		PushEnabled:   t.PushEnabled(),
		PhoneNumber:   t.PhoneNumber(),
		Active:        active,
	}
}

// toDomain converts a database DTO to a translator entity.
func toDomain(dto TranslatorDTO) (*translator.Translator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pairs := make([]translator.LanguagePair, 0, len(dto.LanguagePairs))
	for _, pair := range dto.LanguagePairs {
		pairs = append(pairs, translator.LanguagePair{From: pair.From, To: pair.To})
	}

	windows := make([]translator.Availability, 0, len(dto.Availability))
	for _, w := range dto.Availability {
		windows = append(windows, translator.Availability{From: w.From, To: w.To})
	}

	return translator.NewTranslator(
		id,
		dto.Name,
		pairs,
		dto.Region,
		dto.Rating,
		windows,
		dto.PushEnabled,
		dto.PhoneNumber,
	)
}
