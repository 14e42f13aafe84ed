package dto

import (
	"time"

	"github.com/adityar/sekolahku/internal/app/models"
)

// TeacherResponse represents teacher information
type TeacherResponse struct {
	ID        string    `json:"id"`
	SchoolID  string    `json:"schoolId"`
	Name      string    `json:"name" example:"Dewi Lestari"`
	Subject   string    `json:"subject,omitempty" example:"Matematika"`
	HireDate  string    `json:"hireDate,omitempty" example:"2019-07-01"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Subject  string `json:"subject" binding:"max=100"`
	HireDate string `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTeacherRequest represents teacher update data
type UpdateTeacherRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Subject  string `json:"subject" binding:"max=100"`
	HireDate string `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
}

// TeacherListResponse represents a page of teachers
type TeacherListResponse struct {
	Teachers   []TeacherResponse `json:"teachers"`
	Pagination PaginationInfo    `json:"pagination"`
}

// FromTeacher converts a models.Teacher to a TeacherResponse
func FromTeacher(teacher *models.Teacher) TeacherResponse {
	if teacher == nil {
		return TeacherResponse{}
	}
	return TeacherResponse{
		ID:        teacher.ID,
		SchoolID:  teacher.SchoolID,
		Name:      teacher.Name,
		Subject:   teacher.Subject,
		HireDate:  formatDate(teacher.HireDate),
		CreatedAt: teacher.CreatedAt,
		UpdatedAt: teacher.UpdatedAt,
	}
}
