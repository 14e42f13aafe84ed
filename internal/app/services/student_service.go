package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/app/models/dto"
	"github.com/adityar/sekolahku/internal/app/repositories"
	"github.com/adityar/sekolahku/internal/pkg/apperrors"
	"github.com/adityar/sekolahku/internal/pkg/helpers"
)

// StudentService defines the interface for student CRUD within a school
type StudentService interface {
	CreateStudent(ctx context.Context, schoolID string, req *dto.CreateStudentRequest) (string, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetStudents(ctx context.Context, schoolID, class string, page, size int) ([]*models.Student, int64, error)
	UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	schoolRepo  *repositories.SchoolRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, schoolRepo *repositories.SchoolRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		schoolRepo:  schoolRepo,
	}
}

func parseDateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(helpers.DateOnlyFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	return &t, nil
}

func studentFromRequest(name, nisn, nik, birthPlace, class, status, gender, address, phone,
	specialNeeds, disability, kipPip, father, mother, guardian string, dob *time.Time) *models.Student {
	return &models.Student{
		Name:         strings.TrimSpace(name),
		NISN:         strings.TrimSpace(nisn),
		NIK:          strings.TrimSpace(nik),
		BirthPlace:   strings.TrimSpace(birthPlace),
		DateOfBirth:  dob,
		Class:        strings.TrimSpace(class),
		Status:       models.NormalizeStatus(status),
		Gender:       models.Gender(strings.TrimSpace(gender)),
		Address:      strings.TrimSpace(address),
		Phone:        strings.TrimSpace(phone),
		SpecialNeeds: strings.TrimSpace(specialNeeds),
		Disability:   strings.TrimSpace(disability),
		KIPPIPNumber: strings.TrimSpace(kipPip),
		FatherName:   strings.TrimSpace(father),
		MotherName:   strings.TrimSpace(mother),
		GuardianName: strings.TrimSpace(guardian),
	}
}

// CreateStudent creates a single student. The row insert and the school's
// counter increment commit together.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, schoolID string, req *dto.CreateStudentRequest) (string, error) {
	if strings.TrimSpace(schoolID) == "" {
		return "", fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return "", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	dob, err := parseDateField(req.DateOfBirth)
	if err != nil {
		return "", err
	}

	student := studentFromRequest(req.Name, req.NISN, req.NIK, req.BirthPlace, req.Class,
		req.Status, req.Gender, req.Address, req.Phone, req.SpecialNeeds, req.Disability,
		req.KIPPIPNumber, req.FatherName, req.MotherName, req.GuardianName, dob)
	student.SchoolID = schoolID

	id, err := s.studentRepo.CreateStudent(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return "", apperrors.ErrSchoolNotFound
		}
		return "", apperrors.NewCustomError(apperrors.ErrStorageFailure, "could not create student")
	}
	return id, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetStudents retrieves a page of a school's students plus the total match count
func (s *studentServiceImpl) GetStudents(ctx context.Context, schoolID, class string, page, size int) ([]*models.Student, int64, error) {
	if strings.TrimSpace(schoolID) == "" {
		return nil, 0, fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}

	// Listing an unknown school is a 404, not an empty page
	if _, err := s.schoolRepo.GetSchoolByID(ctx, schoolID); err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, 0, apperrors.ErrSchoolNotFound
		}
		return nil, 0, fmt.Errorf("error retrieving school: %w", err)
	}

	offset := uint64((page - 1) * size)

	students, err := s.studentRepo.GetStudents(ctx, schoolID, class, offset, size)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}

	total, err := s.studentRepo.CountStudents(ctx, schoolID, class)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	return students, total, nil
}

// UpdateStudent updates an existing student. Counts are untouched.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	dob, err := parseDateField(req.DateOfBirth)
	if err != nil {
		return err
	}

	student := studentFromRequest(req.Name, req.NISN, req.NIK, req.BirthPlace, req.Class,
		req.Status, req.Gender, req.Address, req.Phone, req.SpecialNeeds, req.Disability,
		req.KIPPIPNumber, req.FatherName, req.MotherName, req.GuardianName, dob)
	student.ID = id

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent removes a student. The row delete and the school's counter
// decrement commit together.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.DeleteStudent(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return apperrors.NewCustomError(apperrors.ErrStorageFailure, "could not delete student")
	}
	return nil
}
