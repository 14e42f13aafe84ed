package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN" // Console administrators; the only role that may mutate data
)

// StudentStatus defines the enrollment status of a student
type StudentStatus string

const (
	// StatusActive is the default enrollment status ("Aktif")
	StatusActive StudentStatus = "Aktif"
	// StatusInactive marks a student that is no longer enrolled ("Tidak Aktif")
	StatusInactive StudentStatus = "Tidak Aktif"
)

// NormalizeStatus maps a raw status cell to a valid StudentStatus.
// Only the literal "Tidak Aktif" is treated as inactive; everything else,
// including the empty string, is active.
func NormalizeStatus(raw string) StudentStatus {
	if raw == string(StatusInactive) {
		return StatusInactive
	}
	return StatusActive
}

// Gender defines the student gender values used by the console
type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)
