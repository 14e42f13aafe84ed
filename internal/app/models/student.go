package models

import "time"

// Student defines the student model based on the 'students' table.
// Name and Class are required; everything else is optional free text except
// DateOfBirth which, when present, must be a valid calendar date (no
// time-of-day semantics).
type Student struct {
	ID           string        `json:"id" db:"id"`
	SchoolID     string        `json:"schoolId" db:"school_id"`
	Name         string        `json:"name" db:"name" example:"Budi Santoso"`
	NISN         string        `json:"nisn" db:"nisn" example:"0051234567"`
	NIK          string        `json:"nik" db:"nik" example:"3273012345678901"`
	BirthPlace   string        `json:"birthPlace" db:"birth_place" example:"Bandung"`
	DateOfBirth  *time.Time    `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Class        string        `json:"class" db:"class" example:"10-A"`
	Status       StudentStatus `json:"status" db:"status" example:"Aktif"`
	Gender       Gender        `json:"gender" db:"gender" example:"Laki-laki"`
	Address      string        `json:"address" db:"address"`
	Phone        string        `json:"phone" db:"phone"`
	SpecialNeeds string        `json:"specialNeeds" db:"special_needs"`
	Disability   string        `json:"disability" db:"disability"`
	KIPPIPNumber string        `json:"kipPipNumber" db:"kip_pip_number"`
	FatherName   string        `json:"fatherName" db:"father_name"`
	MotherName   string        `json:"motherName" db:"mother_name"`
	GuardianName string        `json:"guardianName" db:"guardian_name"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}
