package department

import (
	"context"
	"errors"

	"hrm-backend/internal/models"
	"hrm-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// UpdateRequest carries a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Name           *string   `json:"name"`
	OnboardingList *[]string `json:"onboardingList"`
}

type Service struct {
	depts storage.DepartmentStore
}

func NewService(depts storage.DepartmentStore) *Service {
	return &Service{depts: depts}
}

func (s *Service) Create(ctx context.Context, name string, onboardingList []string) (models.Department, error) {
	if name == "" {
		return models.Department{}, fiber.NewError(fiber.StatusBadRequest, "Department must have a name.")
	}

	dept := models.Department{
		Name:           name,
		OnboardingList: onboardingList,
	}
	return s.depts.CreateDepartment(ctx, dept)
}

func (s *Service) List(ctx context.Context) ([]models.Department, error) {
	return s.depts.ListDepartments(ctx)
}

// Update overwrites only the name and onboarding list when present in the
// request; every other field keeps its stored value.
func (s *Service) Update(ctx context.Context, id uint, req UpdateRequest) (models.Department, error) {
	dept, err := s.depts.FindDepartmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Department{}, fiber.NewError(fiber.StatusNotFound, "Department does not exist.")
		}
		return models.Department{}, err
	}

	if req.Name != nil && *req.Name != "" {
		dept.Name = *req.Name
	}
	if req.OnboardingList != nil {
		dept.OnboardingList = *req.OnboardingList
	}

	return s.depts.SaveDepartment(ctx, dept)
}
