package store

import (
	"context"
	"errors"

	"medtrack/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Appointments is the MySQL-backed AppointmentStore
type Appointments struct {
	db *gorm.DB // Database handle
}

// NewAppointments creates an AppointmentStore over the given database
func NewAppointments(db *gorm.DB) *Appointments {
	return &Appointments{db: db}
}

// Get fetches an appointment by id, returning (nil, nil) when no record exists
func (s *Appointments) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absent, not an error
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Put upserts the appointment record keyed by id
func (s *Appointments) Put(ctx context.Context, a *domain.Appointment) error {
	return s.db.WithContext(ctx).Save(a).Error // Save upserts on the primary key
}

// UpdateFields sets the given columns for the id; unknown ids match zero rows
func (s *Appointments) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return s.db.WithContext(ctx).Model(&domain.Appointment{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the record for the id; unknown ids match zero rows
func (s *Appointments) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&domain.Appointment{}, "id = ?", id).Error
}

// Scan loads every appointment and filters in process. The listing contract
// is an unindexed predicate scan over the whole table.
func (s *Appointments) Scan(ctx context.Context, keep func(domain.Appointment) bool) ([]domain.Appointment, error) {
	var all []domain.Appointment
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, err
	}
	var out []domain.Appointment
	for _, a := range all {
		if keep(a) {
			out = append(out, a) // Keep matching records only
		}
	}
	return out, nil
}
