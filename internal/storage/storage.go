package storage

import (
	"context"
	"errors"

	"hrm-backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the persistence operations the auth flows need.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uint) (models.User, error)
	SaveUser(ctx context.Context, user models.User) (models.User, error)
}

// DepartmentStore captures the persistence operations for departments.
type DepartmentStore interface {
	CreateDepartment(ctx context.Context, dept models.Department) (models.Department, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	FindDepartmentByID(ctx context.Context, id uint) (models.Department, error)
	SaveDepartment(ctx context.Context, dept models.Department) (models.Department, error)
}

// Store is the full persistence surface of the application.
type Store interface {
	UserStore
	DepartmentStore
}
