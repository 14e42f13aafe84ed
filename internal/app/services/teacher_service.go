package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/app/models/dto"
	"github.com/adityar/sekolahku/internal/app/repositories"
	"github.com/adityar/sekolahku/internal/pkg/apperrors"
)

// TeacherService defines the interface for teacher CRUD within a school
type TeacherService interface {
	CreateTeacher(ctx context.Context, schoolID string, req *dto.CreateTeacherRequest) (string, error)
	GetTeacherByID(ctx context.Context, id string) (*models.Teacher, error)
	GetTeachers(ctx context.Context, schoolID string, page, size int) ([]*models.Teacher, int64, error)
	UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest) error
	DeleteTeacher(ctx context.Context, id string) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
	schoolRepo  *repositories.SchoolRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository, schoolRepo *repositories.SchoolRepository) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		schoolRepo:  schoolRepo,
	}
}

// CreateTeacher creates a teacher; the insert and the school's teacher_count
// increment commit together.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, schoolID string, req *dto.CreateTeacherRequest) (string, error) {
	if strings.TrimSpace(schoolID) == "" {
		return "", fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return "", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	hireDate, err := parseDateField(req.HireDate)
	if err != nil {
		return "", err
	}

	teacher := &models.Teacher{
		SchoolID: schoolID,
		Name:     strings.TrimSpace(req.Name),
		Subject:  strings.TrimSpace(req.Subject),
		HireDate: hireDate,
	}

	id, err := s.teacherRepo.CreateTeacher(ctx, teacher)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return "", apperrors.ErrSchoolNotFound
		}
		return "", apperrors.NewCustomError(apperrors.ErrStorageFailure, "could not create teacher")
	}
	return id, nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id string) (*models.Teacher, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	teacher, err := s.teacherRepo.GetTeacherByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// GetTeachers retrieves a page of a school's teachers plus the total count
func (s *teacherServiceImpl) GetTeachers(ctx context.Context, schoolID string, page, size int) ([]*models.Teacher, int64, error) {
	if strings.TrimSpace(schoolID) == "" {
		return nil, 0, fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.schoolRepo.GetSchoolByID(ctx, schoolID); err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, 0, apperrors.ErrSchoolNotFound
		}
		return nil, 0, fmt.Errorf("error retrieving school: %w", err)
	}

	offset := uint64((page - 1) * size)

	teachers, err := s.teacherRepo.GetTeachers(ctx, schoolID, offset, size)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving teachers: %w", err)
	}

	total, err := s.teacherRepo.CountTeachers(ctx, schoolID)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting teachers: %w", err)
	}

	return teachers, total, nil
}

// UpdateTeacher updates an existing teacher
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	hireDate, err := parseDateField(req.HireDate)
	if err != nil {
		return err
	}

	teacher := &models.Teacher{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Subject:  strings.TrimSpace(req.Subject),
		HireDate: hireDate,
	}

	if err := s.teacherRepo.UpdateTeacher(ctx, teacher); err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}
	return nil
}

// DeleteTeacher removes a teacher; the row delete and the school's counter
// decrement commit together.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	err := s.teacherRepo.DeleteTeacher(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		return apperrors.NewCustomError(apperrors.ErrStorageFailure, "could not delete teacher")
	}
	return nil
}
