package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table.
// Teachers are a read-mostly sibling collection of students; there is no
// bulk import pipeline for them.
type Teacher struct {
	ID        string     `json:"id" db:"id"`
	SchoolID  string     `json:"schoolId" db:"school_id"`
	Name      string     `json:"name" db:"name" example:"Siti Rahayu"`
	Subject   string     `json:"subject" db:"subject" example:"Matematika"`
	HireDate  *time.Time `json:"hireDate,omitempty" db:"hire_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
