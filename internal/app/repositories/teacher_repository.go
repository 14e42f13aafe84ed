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

// ErrTeacherNotFound is returned when a teacher is not found.
var ErrTeacherNotFound = ErrNotFound

var teacherColumns = []string{
	"id", "school_id", "name", "subject", "hire_date", "created_at", "updated_at",
}

// TeacherRepository handles teacher database operations. Like students, every
// row insert/delete pairs with the school's teacher_count delta in one
// transaction.
type TeacherRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(database *db.PostgresDB) *TeacherRepository {
	return &TeacherRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := row.Scan(&teacher.ID, &teacher.SchoolID, &teacher.Name, &teacher.Subject,
		&teacher.HireDate, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

func (r *TeacherRepository) adjustTeacherCount(ctx context.Context, tx pgx.Tx, schoolID string, delta int) error {
	sql, args, err := r.sb.Update("schools").
		Set("teacher_count", squirrel.Expr("teacher_count + ?", delta)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": schoolID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building teacher count delta SQL")
		return fmt.Errorf("failed to build teacher count delta query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("schoolID", schoolID).Int("delta", delta).Msg("Error applying teacher count delta")
		return fmt.Errorf("error updating school teacher count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSchoolNotFound
	}

	return nil
}

// CreateTeacher inserts one teacher and increments the school's cached count,
// both in one transaction.
func (r *TeacherRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) (string, error) {
	teacher.ID = uuid.NewString()
	now := time.Now()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now

	sql, args, err := r.sb.Insert("teachers").
		Columns(teacherColumns...).
		Values(teacher.ID, teacher.SchoolID, teacher.Name, teacher.Subject,
			teacher.HireDate, teacher.CreatedAt, teacher.UpdatedAt).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert teacher SQL")
		return "", fmt.Errorf("failed to build insert teacher query: %w", err)
	}

	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return ErrSchoolNotFound
			}
			logger.Error().Err(err).Str("teacherID", teacher.ID).Msg("Error executing insert teacher query")
			return fmt.Errorf("error inserting teacher: %w", err)
		}
		return r.adjustTeacherCount(ctx, tx, teacher.SchoolID, 1)
	})
	if err != nil {
		return "", err
	}

	return teacher.ID, nil
}

// GetTeacherByID retrieves a teacher by ID
func (r *TeacherRepository) GetTeacherByID(ctx context.Context, id string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get teacher by ID SQL")
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		logger.Error().Err(err).Str("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	return teacher, nil
}

// GetTeachers retrieves a page of a school's teachers
func (r *TeacherRepository) GetTeachers(ctx context.Context, schoolID string, offset uint64, limit int) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"school_id": schoolID}).
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list teachers SQL")
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning teacher row during list")
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating teacher rows")
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// CountTeachers returns the number of a school's teachers
func (r *TeacherRepository) CountTeachers(ctx context.Context, schoolID string) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("teachers").
		Where(squirrel.Eq{"school_id": schoolID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count teachers SQL")
		return 0, fmt.Errorf("failed to build count teachers query: %w", err)
	}

	var count int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count teachers query")
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}

	return count, nil
}

// UpdateTeacher updates an existing teacher
func (r *TeacherRepository) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		SetMap(map[string]interface{}{
			"name":       teacher.Name,
			"subject":    teacher.Subject,
			"hire_date":  teacher.HireDate,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": teacher.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update teacher SQL")
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("teacherID", teacher.ID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	return nil
}

// DeleteTeacher removes a teacher and decrements the school's cached count,
// both in one transaction.
func (r *TeacherRepository) DeleteTeacher(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING school_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete teacher SQL")
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var schoolID string
		if err := tx.QueryRow(ctx, sql, args...).Scan(&schoolID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTeacherNotFound
			}
			logger.Error().Err(err).Str("teacherID", id).Msg("Error executing delete teacher query")
			return fmt.Errorf("error deleting teacher: %w", err)
		}
		return r.adjustTeacherCount(ctx, tx, schoolID, -1)
	})
}
