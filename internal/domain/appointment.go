package domain

// Appointment Model
type Appointment struct {
	ID           string `gorm:"primaryKey;size:36"` // Opaque unique id, generated at booking
	Username     string `gorm:"size:255"`           // Booking patient's display name, by value
	Doctor       string `gorm:"size:255"`           // Treating doctor's name, free text, no foreign key
	Date         string `gorm:"size:32"`            // Free-text scheduling field
	Time         string `gorm:"size:32"`            // Free-text scheduling field
	Reason       string `gorm:"size:255"`           // Free text
	Diagnosis    string `gorm:"size:255"`           // Set by a doctor after creation
	Prescription string `gorm:"size:255"`           // Set by a doctor after creation
}
