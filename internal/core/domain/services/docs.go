// Package services contains domain services that coordinate behavior across
// aggregates: candidate matching for new bookings and the notification
// dispatch fan-out. Services hold no state of their own beyond injected
// collaborators and operate on snapshots passed in by the application layer.
package services
