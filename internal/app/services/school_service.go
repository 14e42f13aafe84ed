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

// SchoolService defines the interface for school-related operations
type SchoolService interface {
	CreateSchool(ctx context.Context, school *models.School) (string, error)
	GetSchoolByID(ctx context.Context, id string) (*models.School, error)
	GetSchools(ctx context.Context, search string, page, size int) ([]*models.School, int64, error)
	UpdateSchool(ctx context.Context, school *models.School) error
	DeleteSchool(ctx context.Context, id string) error
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// schoolServiceImpl implements the SchoolService interface
type schoolServiceImpl struct {
	schoolRepo *repositories.SchoolRepository
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo *repositories.SchoolRepository) SchoolService {
	return &schoolServiceImpl{
		schoolRepo: schoolRepo,
	}
}

// validateSchool validates school data before database operations
func (s *schoolServiceImpl) validateSchool(school *models.School) error {
	if school == nil {
		return fmt.Errorf("%w: school is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(school.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateSchool creates a new school with zeroed member counts
func (s *schoolServiceImpl) CreateSchool(ctx context.Context, school *models.School) (string, error) {
	if err := s.validateSchool(school); err != nil {
		return "", err
	}

	id, err := s.schoolRepo.CreateSchool(ctx, school)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolAlreadyExists) {
			return "", apperrors.ErrSchoolAlreadyExists
		}
		return "", fmt.Errorf("error creating school: %w", err)
	}
	return id, nil
}

// GetSchoolByID retrieves a school by ID
func (s *schoolServiceImpl) GetSchoolByID(ctx context.Context, id string) (*models.School, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}

	school, err := s.schoolRepo.GetSchoolByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}
	return school, nil
}

// GetSchools retrieves a page of schools plus the total match count
func (s *schoolServiceImpl) GetSchools(ctx context.Context, search string, page, size int) ([]*models.School, int64, error) {
	offset := uint64((page - 1) * size)

	schools, err := s.schoolRepo.GetSchools(ctx, search, offset, size)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving schools: %w", err)
	}

	total, err := s.schoolRepo.CountSchools(ctx, search)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting schools: %w", err)
	}

	return schools, total, nil
}

// UpdateSchool updates a school's name and address
func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, school *models.School) error {
	if err := s.validateSchool(school); err != nil {
		return err
	}

	if strings.TrimSpace(school.ID) == "" {
		return fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}

	err := s.schoolRepo.UpdateSchool(ctx, school)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return apperrors.ErrSchoolNotFound
		}
		if errors.Is(err, repositories.ErrSchoolAlreadyExists) {
			return apperrors.ErrSchoolAlreadyExists
		}
		return fmt.Errorf("error updating school: %w", err)
	}
	return nil
}

// DeleteSchool deletes a school by ID. A school that still has students or
// teachers is not deletable.
func (s *schoolServiceImpl) DeleteSchool(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}

	err := s.schoolRepo.DeleteSchool(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return apperrors.ErrSchoolNotFound
		}
		if errors.Is(err, repositories.ErrSchoolHasMembers) {
			return apperrors.NewCustomError(apperrors.ErrConflict, "school still has students or teachers")
		}
		return fmt.Errorf("error deleting school: %w", err)
	}
	return nil
}

// GetDashboard returns console-wide totals computed from the cached counters
func (s *schoolServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	schools, students, teachers, err := s.schoolRepo.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving dashboard totals: %w", err)
	}

	return &dto.DashboardResponse{
		TotalSchools:  schools,
		TotalStudents: students,
		TotalTeachers: teachers,
	}, nil
}
