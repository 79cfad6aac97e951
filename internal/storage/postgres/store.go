package postgres

import (
	"context"
	"errors"

	"hrm-backend/internal/models"
	"hrm-backend/internal/storage"

	"gorm.io/gorm"
)

// Store is the gorm-backed implementation of storage.Store.
// The connection must be opened with TranslateError enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *Store) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *Store) CreateDepartment(ctx context.Context, dept models.Department) (models.Department, error) {
	if err := s.db.WithContext(ctx).Create(&dept).Error; err != nil {
		return models.Department{}, translate(err)
	}
	return dept, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var depts []models.Department
	if err := s.db.WithContext(ctx).Order("id").Find(&depts).Error; err != nil {
		return nil, translate(err)
	}
	return depts, nil
}

func (s *Store) FindDepartmentByID(ctx context.Context, id uint) (models.Department, error) {
	var dept models.Department
	if err := s.db.WithContext(ctx).First(&dept, "id = ?", id).Error; err != nil {
		return models.Department{}, translate(err)
	}
	return dept, nil
}

func (s *Store) SaveDepartment(ctx context.Context, dept models.Department) (models.Department, error) {
	if err := s.db.WithContext(ctx).Save(&dept).Error; err != nil {
		return models.Department{}, translate(err)
	}
	return dept, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storage.ErrAlreadyExists
	default:
		return err
	}
}
