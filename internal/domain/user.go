package domain

// User roles, fixed at registration
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User Model
type User struct {
	Email          string `gorm:"primaryKey;size:255"` // Primary key, exactly one user per email
	Username       string `gorm:"size:255;not null"`   // Display name, not guaranteed unique
	PasswordHash   string `gorm:"not null"`            // Bcrypt hash, never the plaintext
	Role           string `gorm:"size:16;not null"`    // Role: patient or doctor
	Disease        string `gorm:"size:255"`            // Optional free text, patients
	Specialization string `gorm:"size:255"`            // Optional free text, doctors
}
