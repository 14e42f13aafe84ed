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

// Student error types
var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = ErrNotFound
	// ErrEmptyBatch is returned when a bulk insert is asked to write zero rows.
	ErrEmptyBatch = errors.New("student batch is empty")
)

var studentColumns = []string{
	"id", "school_id", "name", "nisn", "nik", "birth_place", "date_of_birth",
	"class", "status", "gender", "address", "phone", "special_needs",
	"disability", "kip_pip_number", "father_name", "mother_name",
	"guardian_name", "created_at", "updated_at",
}

// StudentRepository handles student database operations. Every write that
// adds or removes a student row carries the parent school's student_count
// delta in the same transaction.
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.SchoolID, &student.Name, &student.NISN,
		&student.NIK, &student.BirthPlace, &student.DateOfBirth, &student.Class,
		&student.Status, &student.Gender, &student.Address, &student.Phone,
		&student.SpecialNeeds, &student.Disability, &student.KIPPIPNumber,
		&student.FatherName, &student.MotherName, &student.GuardianName,
		&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// adjustStudentCount applies a counter delta to the parent school inside tx.
// The delta is always expressed relative to the stored value, never computed
// from a previously read count.
func (r *StudentRepository) adjustStudentCount(ctx context.Context, tx pgx.Tx, schoolID string, delta int) error {
	sql, args, err := r.sb.Update("schools").
		Set("student_count", squirrel.Expr("student_count + ?", delta)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": schoolID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building student count delta SQL")
		return fmt.Errorf("failed to build student count delta query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("schoolID", schoolID).Int("delta", delta).Msg("Error applying student count delta")
		return fmt.Errorf("error updating school student count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSchoolNotFound
	}

	return nil
}

func (r *StudentRepository) insertStudent(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(student.ID, student.SchoolID, student.Name, student.NISN, student.NIK,
			student.BirthPlace, student.DateOfBirth, student.Class, student.Status,
			student.Gender, student.Address, student.Phone, student.SpecialNeeds,
			student.Disability, student.KIPPIPNumber, student.FatherName,
			student.MotherName, student.GuardianName, student.CreatedAt, student.UpdatedAt).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert student SQL")
		return fmt.Errorf("failed to build insert student query: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing insert student query")
		return fmt.Errorf("error inserting student: %w", err)
	}

	return nil
}

// CreateStudent inserts one student and increments the school's cached count,
// both in one transaction.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (string, error) {
	student.ID = uuid.NewString()
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.insertStudent(ctx, tx, student); err != nil {
			return err
		}
		return r.adjustStudentCount(ctx, tx, student.SchoolID, 1)
	})
	if err != nil {
		return "", err
	}

	return student.ID, nil
}

// BulkCreate inserts a whole import batch and applies a single +N counter
// delta, all in one transaction. Either every row lands or none does.
func (r *StudentRepository) BulkCreate(ctx context.Context, schoolID string, students []*models.Student) error {
	if len(students) == 0 {
		return ErrEmptyBatch
	}

	now := time.Now()
	builder := r.sb.Insert("students").Columns(studentColumns...)
	for _, student := range students {
		student.ID = uuid.NewString()
		student.SchoolID = schoolID
		student.CreatedAt = now
		student.UpdatedAt = now
		builder = builder.Values(student.ID, student.SchoolID, student.Name, student.NISN,
			student.NIK, student.BirthPlace, student.DateOfBirth, student.Class,
			student.Status, student.Gender, student.Address, student.Phone,
			student.SpecialNeeds, student.Disability, student.KIPPIPNumber,
			student.FatherName, student.MotherName, student.GuardianName,
			student.CreatedAt, student.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building bulk insert students SQL")
		return fmt.Errorf("failed to build bulk insert query: %w", err)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return ErrSchoolNotFound
			}
			logger.Error().Err(err).Str("schoolID", schoolID).Int("batchSize", len(students)).Msg("Error executing bulk insert students query")
			return fmt.Errorf("error bulk inserting students: %w", err)
		}
		return r.adjustStudentCount(ctx, tx, schoolID, len(students))
	})
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

func (r *StudentRepository) listBuilder(schoolID, class string) squirrel.SelectBuilder {
	builder := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"school_id": schoolID}).
		OrderBy("name ASC")
	if class != "" {
		builder = builder.Where(squirrel.Eq{"class": class})
	}
	return builder
}

// GetStudents retrieves a page of a school's students, optionally filtered by class
func (r *StudentRepository) GetStudents(ctx context.Context, schoolID, class string, offset uint64, limit int) ([]*models.Student, error) {
	sql, args, err := r.listBuilder(schoolID, class).
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// GetAllStudents retrieves every student of a school in listing order,
// optionally filtered by class. Used by the export writer.
func (r *StudentRepository) GetAllStudents(ctx context.Context, schoolID, class string) ([]*models.Student, error) {
	sql, args, err := r.listBuilder(schoolID, class).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list all students SQL")
		return nil, fmt.Errorf("failed to build list all students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// CountStudents returns the number of a school's students matching the class filter
func (r *StudentRepository) CountStudents(ctx context.Context, schoolID, class string) (int64, error) {
	builder := r.sb.Select("COUNT(*)").
		From("students").
		Where(squirrel.Eq{"school_id": schoolID})
	if class != "" {
		builder = builder.Where(squirrel.Eq{"class": class})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// UpdateStudent updates an existing student. Updates never touch the school's
// cached counts.
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":           student.Name,
			"nisn":           student.NISN,
			"nik":            student.NIK,
			"birth_place":    student.BirthPlace,
			"date_of_birth":  student.DateOfBirth,
			"class":          student.Class,
			"status":         student.Status,
			"gender":         student.Gender,
			"address":        student.Address,
			"phone":          student.Phone,
			"special_needs":  student.SpecialNeeds,
			"disability":     student.Disability,
			"kip_pip_number": student.KIPPIPNumber,
			"father_name":    student.FatherName,
			"mother_name":    student.MotherName,
			"guardian_name":  student.GuardianName,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// DeleteStudent removes a student and decrements the school's cached count,
// both in one transaction.
func (r *StudentRepository) DeleteStudent(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING school_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var schoolID string
		if err := tx.QueryRow(ctx, sql, args...).Scan(&schoolID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrStudentNotFound
			}
			logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
			return fmt.Errorf("error deleting student: %w", err)
		}
		return r.adjustStudentCount(ctx, tx, schoolID, -1)
	})
}
