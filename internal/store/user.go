package store

import (
	"context"
	"errors"

	"medtrack/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Users is the MySQL-backed CredentialStore
type Users struct {
	db *gorm.DB // Database handle
}

// NewUsers creates a CredentialStore over the given database
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Get fetches a user by email, returning (nil, nil) when no record exists
func (s *Users) Get(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absent, not an error
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Put upserts the user record keyed by email
func (s *Users) Put(ctx context.Context, u *domain.User) error {
	return s.db.WithContext(ctx).Save(u).Error // Save upserts on the primary key
}

// UpdateField sets a single column for the given email
func (s *Users) UpdateField(ctx context.Context, email, field string, value any) error {
	// Zero matched rows (unknown email) is not surfaced as an error
	return s.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Update(field, value).Error
}
