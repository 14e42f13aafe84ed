package dto

import (
	"testing"
	"time"

	"github.com/adityar/sekolahku/internal/app/models"
)

func TestFromStudentFormatsDateOfBirth(t *testing.T) {
	dob := time.Date(2012, 4, 21, 0, 0, 0, 0, time.UTC)
	resp := FromStudent(&models.Student{
		ID:          "s-1",
		SchoolID:    "sch-1",
		Name:        "Budi Santoso",
		DateOfBirth: &dob,
		Status:      models.StatusActive,
	})

	if resp.DateOfBirth != "2012-04-21" {
		t.Errorf("dateOfBirth = %q, want %q", resp.DateOfBirth, "2012-04-21")
	}
	if resp.Name != "Budi Santoso" || resp.SchoolID != "sch-1" {
		t.Errorf("unexpected mapping: %+v", resp)
	}
}

func TestFromStudentNilDateReadsEmpty(t *testing.T) {
	resp := FromStudent(&models.Student{ID: "s-1", Name: "Siti Aminah"})
	if resp.DateOfBirth != "" {
		t.Errorf("dateOfBirth = %q, want empty for nil date", resp.DateOfBirth)
	}
}

func TestFromStudentNil(t *testing.T) {
	if got := FromStudent(nil); got != (StudentResponse{}) {
		t.Errorf("FromStudent(nil) = %+v, want zero value", got)
	}
}

func TestFromTeacherFormatsHireDate(t *testing.T) {
	hired := time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC)
	resp := FromTeacher(&models.Teacher{ID: "t-1", Name: "Dewi Lestari", HireDate: &hired})
	if resp.HireDate != "2019-07-01" {
		t.Errorf("hireDate = %q, want %q", resp.HireDate, "2019-07-01")
	}

	resp = FromTeacher(&models.Teacher{ID: "t-2", Name: "Agus Salim"})
	if resp.HireDate != "" {
		t.Errorf("hireDate = %q, want empty for nil date", resp.HireDate)
	}
}
