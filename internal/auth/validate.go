package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"hrm-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	minPasswordLen = 6
	minSecretLen   = 6
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{11}$`)
)

// Validator runs the per-flow payload checks in a fixed order and returns
// the first failing rule as a *fiber.Error. The department-existence rule is
// the only one that touches the store.
type Validator struct {
	depts storage.DepartmentStore
}

func NewValidator(depts storage.DepartmentStore) *Validator {
	return &Validator{depts: depts}
}

func (v *Validator) Signup(ctx context.Context, req SignupRequest) error {
	if len(strings.Fields(req.Name)) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "Name must have atleast first and last name.")
	}
	if !emailPattern.MatchString(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Email is invalid.")
	}
	if len(req.Password) < minPasswordLen {
		return fiber.NewError(fiber.StatusBadRequest, "Password is invalid. Must be at least 6 characters.")
	}
	if !phonePattern.MatchString(req.Phone) {
		return fiber.NewError(fiber.StatusBadRequest, "Phone number is invalid.")
	}
	if req.Department == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Employee must belong to a department.")
	}
	if _, err := v.depts.FindDepartmentByID(ctx, req.Department); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Department invalid.")
		}
		return err
	}
	if len(req.Secret) < minSecretLen {
		return fiber.NewError(fiber.StatusBadRequest, "Secret is invalid.")
	}
	return nil
}

// Login checks the email shape only. Password quality is deliberately not
// checked here: a wrong short password must fall through to the credential
// comparison and its 401.
func (v *Validator) Login(req LoginRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Email is invalid.")
	}
	return nil
}

func (v *Validator) ResetEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email address.")
	}
	return nil
}

func (v *Validator) ResetPassword(password string) error {
	if len(password) < minPasswordLen {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid Password.")
	}
	return nil
}
