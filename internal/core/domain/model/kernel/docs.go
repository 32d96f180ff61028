// Package kernel provides core domain primitives for the booking system.
// It implements fundamental building blocks following Domain-Driven Design
// principles: value objects that are immutable, self-validating and safe to
// share across aggregates. Currently the package contains the UUID identity
// value object used by every aggregate in the domain model.
package kernel
