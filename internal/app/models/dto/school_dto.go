package dto

import (
	"time"

	"github.com/adityar/sekolahku/internal/app/models"
)

// SchoolResponse represents school information including cached member counts
type SchoolResponse struct {
	ID           string    `json:"id" example:"6b9f1c0e-8f6d-4a1f-9a7e-2f4c8d1e0b3a"`
	Name         string    `json:"name" example:"SD Negeri 1 Menteng"`
	Address      string    `json:"address,omitempty" example:"Jl. Merdeka No. 12, Jakarta"`
	StudentCount int       `json:"studentCount" example:"412"`
	TeacherCount int       `json:"teacherCount" example:"28"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateSchoolRequest represents school creation data
type CreateSchoolRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateSchoolRequest represents school update data
type UpdateSchoolRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	Address string `json:"address" binding:"max=500"`
}

// SchoolListResponse represents a page of schools
type SchoolListResponse struct {
	Schools    []SchoolResponse `json:"schools"`
	Pagination PaginationInfo   `json:"pagination"`
}

// DashboardResponse aggregates console-wide totals
type DashboardResponse struct {
	TotalSchools  int64 `json:"totalSchools"`
	TotalStudents int64 `json:"totalStudents"`
	TotalTeachers int64 `json:"totalTeachers"`
}

// FromSchool converts a models.School to a SchoolResponse
func FromSchool(school *models.School) SchoolResponse {
	if school == nil {
		return SchoolResponse{}
	}
	return SchoolResponse{
		ID:           school.ID,
		Name:         school.Name,
		Address:      school.Address,
		StudentCount: school.StudentCount,
		TeacherCount: school.TeacherCount,
		CreatedAt:    school.CreatedAt,
		UpdatedAt:    school.UpdatedAt,
	}
}
