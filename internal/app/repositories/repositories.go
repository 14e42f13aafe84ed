package repositories

import (
	"errors"

	"github.com/adityar/sekolahku/internal/db"
)

// ErrNotFound is the shared sentinel for lookups that match no row.
var ErrNotFound = errors.New("resource not found")

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository  *SchoolRepository
	StudentRepository *StudentRepository
	TeacherRepository *TeacherRepository
	UserRepository    *UserRepository
	TokenRepository   *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		SchoolRepository:  NewSchoolRepository(database),
		StudentRepository: NewStudentRepository(database),
		TeacherRepository: NewTeacherRepository(database),
		UserRepository:    NewUserRepository(database.Pool),
		TokenRepository:   NewTokenRepository(database.Pool),
	}
}
