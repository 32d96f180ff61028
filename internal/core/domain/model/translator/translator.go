package translator

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

var (
	// ErrTranslatorIsNotConstructed is returned when a Translator instance was not
	// created through the NewTranslator factory method.
	ErrTranslatorIsNotConstructed = errors.New("Translator must be created via NewTranslator")
)

// LanguagePair is a source/target language combination a translator covers.
type LanguagePair struct {
	From string
	To   string
}

// Availability is a declared working window. A translator is considered
// available for a booking whose due time falls inside any of their windows.
type Availability struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the instant falls inside the window.
// The lower bound is inclusive, the upper bound exclusive.
func (a Availability) Contains(t time.Time) bool {
	return !t.Before(a.From) && t.Before(a.To)
}

// Translator is a worker entity eligible to be matched to jobs.
// For the purposes of the booking core the translator is immutable: its
// capability attributes are owned by the external user-management service
// and only read here during matching.
type Translator struct {
	id            kernel.UUID
	name          string
	languagePairs []LanguagePair
	region        string
	rating        float64
	availability  []Availability
	pushEnabled   bool
	phoneNumber   string
	isConstructed bool
}

// NewTranslator creates a Translator with validation.
// A translator must have at least one language pair and a service region;
// rating is clamped to the 0..100 scale used by the matcher's ordering.
func NewTranslator(
	id kernel.UUID,
	name string,
	languagePairs []LanguagePair,
	region string,
	rating float64,
	availability []Availability,
	pushEnabled bool,
	phoneNumber string,
) (*Translator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if len(languagePairs) == 0 {
		return nil, errs.NewValueIsRequiredError("languagePairs")
	}
	if region == "" {
		return nil, errs.NewValueIsRequiredError("region")
	}
	if rating < 0 || rating > 100 {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 0, 100)
	}

	return &Translator{
		id:            id,
		name:          name,
		languagePairs: append([]LanguagePair(nil), languagePairs...),
		region:        region,
		rating:        rating,
		availability:  append([]Availability(nil), availability...),
		pushEnabled:   pushEnabled,
		phoneNumber:   phoneNumber,
		isConstructed: true,
	}, nil
}

// Validate ensures the Translator instance was properly constructed.
func (t *Translator) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTranslatorIsNotConstructed
	}
	return nil
}

// ID returns the translator's unique identifier.
func (t *Translator) ID() kernel.UUID {
	return t.id
}

// Name returns the translator's display name.
func (t *Translator) Name() string {
	return t.name
}

// LanguagePairs returns the language pairs the translator covers.
func (t *Translator) LanguagePairs() []LanguagePair {
	return append([]LanguagePair(nil), t.languagePairs...)
}

// Region returns the translator's service region.
func (t *Translator) Region() string {
	return t.region
}

// Rating returns the translator's eligibility score base on a 0..100 scale.
func (t *Translator) Rating() float64 {
	return t.rating
}

// Availability returns the translator's declared working windows.
func (t *Translator) Availability() []Availability {
	return append([]Availability(nil), t.availability...)
}

// PushEnabled reports whether the translator can receive push notifications.
// Translators without push support fall back to SMS during dispatch.
func (t *Translator) PushEnabled() bool {
	return t.pushEnabled
}

// PhoneNumber returns the SMS destination for the translator, if any.
func (t *Translator) PhoneNumber() string {
	return t.phoneNumber
}

// CoversLanguagePair reports whether the translator covers the given pair.
func (t *Translator) CoversLanguagePair(from, to string) bool {
	for _, pair := range t.languagePairs {
		if pair.From == from && pair.To == to {
			return true
		}
	}
	return false
}

// ServesRegion reports whether the translator serves the given region.
func (t *Translator) ServesRegion(region string) bool {
	return t.region == region
}

// IsAvailableAt reports whether the instant falls within any declared window.
// A translator with no declared windows is treated as always available.
func (t *Translator) IsAvailableAt(at time.Time) bool {
	if len(t.availability) == 0 {
		return true
	}
	for _, window := range t.availability {
		if window.Contains(at) {
			return true
		}
	}
	return false
}
