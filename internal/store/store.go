// Package store defines the persistence contracts the clinic app relies on.
// Both stores expose the point-operation surface of a managed key/value table:
// unconditional upserts, keyed field updates that no-op on a missing key, and
// a full predicate scan for listings. Cross-record atomicity is not offered
// and not required by any caller.
package store

import (
	"context"

	"medtrack/internal/domain" // Importing domain models
)

// CredentialStore holds user records keyed by email
type CredentialStore interface {
	// Get returns the user for the email, or (nil, nil) when absent
	Get(ctx context.Context, email string) (*domain.User, error)
	// Put writes the record unconditionally; a second write for the same email wins silently
	Put(ctx context.Context, u *domain.User) error
	// UpdateField sets a single column for the email; missing email is a silent no-op
	UpdateField(ctx context.Context, email, field string, value any) error
}

// AppointmentStore holds appointment records keyed by an opaque id
type AppointmentStore interface {
	// Get returns the appointment for the id, or (nil, nil) when absent
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	// Put writes the record unconditionally
	Put(ctx context.Context, a *domain.Appointment) error
	// UpdateFields sets the given columns for the id; missing id is a silent no-op
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// Delete removes the record for the id; missing id is a silent no-op
	Delete(ctx context.Context, id string) error
	// Scan walks every appointment and returns those matching the predicate.
	// Linear in the table size; fine at clinic scale, the first index target
	// if that ever changes.
	Scan(ctx context.Context, keep func(domain.Appointment) bool) ([]domain.Appointment, error)
}
