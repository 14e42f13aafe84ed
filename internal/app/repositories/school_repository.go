package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/db"
	"github.com/adityar/sekolahku/internal/pkg/dberrors"
	"github.com/adityar/sekolahku/internal/pkg/logger"
)

// School error types
var (
	// ErrSchoolNotFound is returned when a school is not found.
	ErrSchoolNotFound = ErrNotFound
	// ErrSchoolAlreadyExists is returned when a school with the same name exists.
	ErrSchoolAlreadyExists = errors.New("school with this name already exists")
	// ErrSchoolHasMembers is returned when deleting a school that still has
	// students or teachers. Children are never deleted implicitly.
	ErrSchoolHasMembers = errors.New("school still has students or teachers and cannot be deleted")
)

var schoolColumns = []string{
	"id", "name", "address", "student_count", "teacher_count", "created_at", "updated_at",
}

// SchoolRepository handles school database operations
type SchoolRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(database *db.PostgresDB) *SchoolRepository {
	return &SchoolRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSchool(row pgx.Row) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(&school.ID, &school.Name, &school.Address, &school.StudentCount,
		&school.TeacherCount, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// CreateSchool creates a new school. Member counts always start at zero;
// callers cannot seed them.
func (r *SchoolRepository) CreateSchool(ctx context.Context, school *models.School) (string, error) {
	id := uuid.NewString()
	now := time.Now()

	sql, args, err := r.sb.Insert("schools").
		Columns("id", "name", "address", "student_count", "teacher_count", "created_at", "updated_at").
		Values(id, school.Name, school.Address, 0, 0, now, now).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create school SQL")
		return "", fmt.Errorf("failed to build create school query: %w", err)
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return "", ErrSchoolAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create school query")
		return "", fmt.Errorf("error creating school: %w", err)
	}

	return id, nil
}

// GetSchoolByID retrieves a school by ID
func (r *SchoolRepository) GetSchoolByID(ctx context.Context, id string) (*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns...).
		From("schools").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get school by ID SQL")
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school, err := scanSchool(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("schoolID", id).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}

	return school, nil
}

// GetSchools retrieves a page of schools, optionally filtered by a
// case-insensitive name substring.
func (r *SchoolRepository) GetSchools(ctx context.Context, search string, offset uint64, limit int) ([]*models.School, error) {
	builder := r.sb.Select(schoolColumns...).
		From("schools").
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit))

	if search != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + search + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list schools SQL")
		return nil, fmt.Errorf("failed to build list schools query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schools query")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning school row during list")
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating school rows")
		return nil, fmt.Errorf("error iterating school rows: %w", err)
	}

	return schools, nil
}

// CountSchools returns the number of schools matching the search filter
func (r *SchoolRepository) CountSchools(ctx context.Context, search string) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("schools")
	if search != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + search + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count schools SQL")
		return 0, fmt.Errorf("failed to build count schools query: %w", err)
	}

	var count int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count schools query")
		return 0, fmt.Errorf("error counting schools: %w", err)
	}

	return count, nil
}

// UpdateSchool updates a school's name and address. Member counts are
// maintained exclusively by student/teacher writes and are never set here.
func (r *SchoolRepository) UpdateSchool(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Update("schools").
		SetMap(map[string]interface{}{
			"name":       school.Name,
			"address":    school.Address,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": school.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update school SQL")
		return fmt.Errorf("failed to build update school query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrSchoolAlreadyExists
		}
		logger.Error().Err(err).Str("schoolID", school.ID).Msg("Error executing update school query")
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSchoolNotFound
	}

	return nil
}

// DeleteSchool deletes a school by ID. Deleting a school that still has
// students or teachers fails; there is no cascade.
func (r *SchoolRepository) DeleteSchool(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("schools").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete school SQL")
		return fmt.Errorf("failed to build delete school query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrSchoolHasMembers
		}
		logger.Error().Err(err).Str("schoolID", id).Msg("Error executing delete school query")
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSchoolNotFound
	}

	return nil
}

// GetTotals sums console-wide counts for the dashboard. Member totals come
// from the cached per-school counters, not COUNT over the member tables.
func (r *SchoolRepository) GetTotals(ctx context.Context) (schools, students, teachers int64, err error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COALESCE(SUM(student_count), 0)",
		"COALESCE(SUM(teacher_count), 0)",
	).From("schools").ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building school totals SQL")
		return 0, 0, 0, fmt.Errorf("failed to build school totals query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&schools, &students, &teachers); err != nil {
		logger.Error().Err(err).Msg("Error executing school totals query")
		return 0, 0, 0, fmt.Errorf("error querying school totals: %w", err)
	}

	return schools, students, teachers, nil
}
