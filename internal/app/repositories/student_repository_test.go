package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityar/sekolahku/internal/app/migrations"
	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/db"
)

// newTestDB connects to the database named by TEST_DATABASE_URL and ensures
// the schema is migrated. Tests using it are skipped when the variable is
// unset, so the pure-unit part of the suite stays runnable anywhere.
func newTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("pinging test database: %v", err)
	}

	if err := migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return &db.PostgresDB{Pool: pool}
}

func createTestSchool(t *testing.T, database *db.PostgresDB) string {
	t.Helper()
	id, err := NewSchoolRepository(database).CreateSchool(context.Background(), &models.School{
		Name:    fmt.Sprintf("SD Uji Coba %d", time.Now().UnixNano()),
		Address: "Jl. Percobaan No. 1",
	})
	if err != nil {
		t.Fatalf("creating test school: %v", err)
	}
	return id
}

func schoolStudentCount(t *testing.T, database *db.PostgresDB, schoolID string) int {
	t.Helper()
	school, err := NewSchoolRepository(database).GetSchoolByID(context.Background(), schoolID)
	if err != nil {
		t.Fatalf("reading school: %v", err)
	}
	return school.StudentCount
}

func TestCreateStudentIncrementsSchoolCount(t *testing.T) {
	database := newTestDB(t)
	repo := NewStudentRepository(database)
	schoolID := createTestSchool(t, database)

	id, err := repo.CreateStudent(context.Background(), &models.Student{
		SchoolID: schoolID,
		Name:     "Budi Santoso",
		Status:   models.StatusActive,
	})
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if id == "" {
		t.Fatal("CreateStudent() returned empty ID")
	}

	if got := schoolStudentCount(t, database, schoolID); got != 1 {
		t.Errorf("student_count = %d after one create, want 1", got)
	}
}

func TestDeleteStudentDecrementsSchoolCount(t *testing.T) {
	database := newTestDB(t)
	repo := NewStudentRepository(database)
	schoolID := createTestSchool(t, database)

	id, err := repo.CreateStudent(context.Background(), &models.Student{
		SchoolID: schoolID,
		Name:     "Siti Aminah",
		Status:   models.StatusActive,
	})
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}

	if err := repo.DeleteStudent(context.Background(), id); err != nil {
		t.Fatalf("DeleteStudent() error = %v", err)
	}

	if got := schoolStudentCount(t, database, schoolID); got != 0 {
		t.Errorf("student_count = %d after create then delete, want 0", got)
	}
}

func TestBulkCreateAppliesSingleDelta(t *testing.T) {
	database := newTestDB(t)
	repo := NewStudentRepository(database)
	schoolID := createTestSchool(t, database)

	students := []*models.Student{
		{Name: "Budi Santoso", Status: models.StatusActive},
		{Name: "Siti Aminah", Status: models.StatusActive},
		{Name: "Agus Salim", Status: models.StatusInactive},
	}
	if err := repo.BulkCreate(context.Background(), schoolID, students); err != nil {
		t.Fatalf("BulkCreate() error = %v", err)
	}

	if got := schoolStudentCount(t, database, schoolID); got != 3 {
		t.Errorf("student_count = %d after bulk of 3, want 3", got)
	}
	rows, err := repo.CountStudents(context.Background(), schoolID, "")
	if err != nil {
		t.Fatalf("CountStudents() error = %v", err)
	}
	if rows != 3 {
		t.Errorf("stored rows = %d after bulk of 3, want 3", rows)
	}
}

func TestBulkCreateRollsBackWholeBatch(t *testing.T) {
	database := newTestDB(t)
	repo := NewStudentRepository(database)
	schoolID := createTestSchool(t, database)

	// The second row overflows the name column, so the insert statement
	// fails after the first row has notionally been written.
	students := []*models.Student{
		{Name: "Budi Santoso", Status: models.StatusActive},
		{Name: strings.Repeat("x", 200), Status: models.StatusActive},
	}
	if err := repo.BulkCreate(context.Background(), schoolID, students); err == nil {
		t.Fatal("BulkCreate() with an overlong name should fail")
	}

	if got := schoolStudentCount(t, database, schoolID); got != 0 {
		t.Errorf("student_count = %d after failed bulk, want 0 (rolled back)", got)
	}
	rows, err := repo.CountStudents(context.Background(), schoolID, "")
	if err != nil {
		t.Fatalf("CountStudents() error = %v", err)
	}
	if rows != 0 {
		t.Errorf("stored rows = %d after failed bulk, want 0 (rolled back)", rows)
	}
}

func TestCreateStudentUnknownSchool(t *testing.T) {
	database := newTestDB(t)
	repo := NewStudentRepository(database)

	_, err := repo.CreateStudent(context.Background(), &models.Student{
		SchoolID: "00000000-0000-0000-0000-000000000000",
		Name:     "Budi Santoso",
		Status:   models.StatusActive,
	})
	if !errors.Is(err, ErrSchoolNotFound) {
		t.Errorf("CreateStudent() error = %v, want ErrSchoolNotFound", err)
	}
}
