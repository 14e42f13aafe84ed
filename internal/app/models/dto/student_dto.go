package dto

import (
	"time"

	"github.com/adityar/sekolahku/internal/app/models"
)

// StudentResponse represents full student information
type StudentResponse struct {
	ID           string    `json:"id"`
	SchoolID     string    `json:"schoolId"`
	Name         string    `json:"name" example:"Budi Santoso"`
	NISN         string    `json:"nisn,omitempty" example:"0051234567"`
	NIK          string    `json:"nik,omitempty" example:"3171234567890001"`
	BirthPlace   string    `json:"birthPlace,omitempty" example:"Jakarta"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty" example:"2012-04-21"`
	Class        string    `json:"class,omitempty" example:"4 - A"`
	Status       string    `json:"status" example:"Aktif"`
	Gender       string    `json:"gender,omitempty" example:"Laki-laki"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	SpecialNeeds string    `json:"specialNeeds,omitempty"`
	Disability   string    `json:"disability,omitempty"`
	KIPPIPNumber string    `json:"kipPipNumber,omitempty"`
	FatherName   string    `json:"fatherName,omitempty"`
	MotherName   string    `json:"motherName,omitempty"`
	GuardianName string    `json:"guardianName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=150"`
	NISN         string `json:"nisn" binding:"omitempty,len=10,numeric"`
	NIK          string `json:"nik" binding:"omitempty,len=16,numeric"`
	BirthPlace   string `json:"birthPlace" binding:"max=100"`
	DateOfBirth  string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Class        string `json:"class" binding:"max=50"`
	Status       string `json:"status" binding:"omitempty,oneof=Aktif 'Tidak Aktif'"`
	Gender       string `json:"gender" binding:"omitempty,oneof=Laki-laki Perempuan"`
	Address      string `json:"address" binding:"max=500"`
	Phone        string `json:"phone" binding:"max=20"`
	SpecialNeeds string `json:"specialNeeds" binding:"max=100"`
	Disability   string `json:"disability" binding:"max=100"`
	KIPPIPNumber string `json:"kipPipNumber" binding:"max=50"`
	FatherName   string `json:"fatherName" binding:"max=150"`
	MotherName   string `json:"motherName" binding:"max=150"`
	GuardianName string `json:"guardianName" binding:"max=150"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=150"`
	NISN         string `json:"nisn" binding:"omitempty,len=10,numeric"`
	NIK          string `json:"nik" binding:"omitempty,len=16,numeric"`
	BirthPlace   string `json:"birthPlace" binding:"max=100"`
	DateOfBirth  string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Class        string `json:"class" binding:"max=50"`
	Status       string `json:"status" binding:"omitempty,oneof=Aktif 'Tidak Aktif'"`
	Gender       string `json:"gender" binding:"omitempty,oneof=Laki-laki Perempuan"`
	Address      string `json:"address" binding:"max=500"`
	Phone        string `json:"phone" binding:"max=20"`
	SpecialNeeds string `json:"specialNeeds" binding:"max=100"`
	Disability   string `json:"disability" binding:"max=100"`
	KIPPIPNumber string `json:"kipPipNumber" binding:"max=50"`
	FatherName   string `json:"fatherName" binding:"max=150"`
	MotherName   string `json:"motherName" binding:"max=150"`
	GuardianName string `json:"guardianName" binding:"max=150"`
}

// StudentListResponse represents a page of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(student *models.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:           student.ID,
		SchoolID:     student.SchoolID,
		Name:         student.Name,
		NISN:         student.NISN,
		NIK:          student.NIK,
		BirthPlace:   student.BirthPlace,
		DateOfBirth:  formatDate(student.DateOfBirth),
		Class:        student.Class,
		Status:       string(student.Status),
		Gender:       string(student.Gender),
		Address:      student.Address,
		Phone:        student.Phone,
		SpecialNeeds: student.SpecialNeeds,
		Disability:   student.Disability,
		KIPPIPNumber: student.KIPPIPNumber,
		FatherName:   student.FatherName,
		MotherName:   student.MotherName,
		GuardianName: student.GuardianName,
		CreatedAt:    student.CreatedAt,
		UpdatedAt:    student.UpdatedAt,
	}
}
