package models

import "time"

// School defines the school model based on the 'schools' table.
// StudentCount and TeacherCount are denormalized counters kept in sync with
// the child collections inside the same transaction as every child mutation.
type School struct {
	ID           string    `json:"id" db:"id" example:"d5f1c1f4-9f5e-4a0b-8a6e-2f4f6f1a2b3c"`
	Name         string    `json:"name" db:"name" example:"SMA Negeri 1 Bandung"`
	Address      string    `json:"address" db:"address" example:"Jl. Ir. H. Juanda No. 93, Bandung"`
	StudentCount int       `json:"studentCount" db:"student_count" example:"412"`
	TeacherCount int       `json:"teacherCount" db:"teacher_count" example:"35"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
