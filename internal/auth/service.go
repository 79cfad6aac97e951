package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"hrm-backend/internal/config"
	"hrm-backend/internal/models"
	"hrm-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	Department       uint   `json:"department"`
	DateOfEmployment string `json:"dOE"`
	Secret           string `json:"secret"`
	RecentHire       bool   `json:"recentHire"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Secret   string `json:"secret"`
}

// Service orchestrates validation, the store, password hashing, and token
// issuance for the signup, login, and forgot-password flows. Expected domain
// failures are returned as *fiber.Error with their contract message; anything
// else is an infrastructure fault and surfaces as 500.
type Service struct {
	users       storage.UserStore
	validate    *Validator
	tokens      *TokenManager
	superEmail  string
	resetSecret string
}

func NewService(store storage.Store, tokens *TokenManager, cfg *config.Config) *Service {
	return &Service{
		users:       store,
		validate:    NewValidator(store),
		tokens:      tokens,
		superEmail:  strings.ToLower(cfg.SuperEmail),
		resetSecret: cfg.ResetSecret,
	}
}

// Signup validates the payload, rejects duplicate emails, and persists a new
// user. The role is derived from the configured superuser email; everyone
// else is an employee. Returns the created user and the confirmation message.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (models.User, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Signup(ctx, req); err != nil {
		return models.User{}, "", err
	}

	if _, err := s.users.FindUserByEmail(ctx, req.Email); err == nil {
		return models.User{}, "", fiber.NewError(fiber.StatusConflict, "User with email already exists.")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	role := models.RoleEmployee
	if req.Email == s.superEmail {
		role = models.RoleSuperuser
	}

	user := models.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Phone:            req.Phone,
		DepartmentID:     &req.Department,
		DateOfEmployment: req.DateOfEmployment,
		RecentHire:       req.RecentHire,
		Role:             role,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		// Two concurrent signups can both pass the pre-check; the unique
		// index decides and the loser lands here.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, "", fiber.NewError(fiber.StatusConflict, "User with email already exists.")
		}
		return models.User{}, "", err
	}

	msg := fmt.Sprintf("%s was created successfully as a/an %s.", created.Name, created.Role)
	return created, msg, nil
}

// Login checks credentials and issues a token for the user.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Login(req); err != nil {
		return "", err
	}

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fiber.NewError(fiber.StatusNotFound, "User with email does not exist.")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid password.")
	}

	return s.tokens.Issue(&user)
}

// ForgotPassword overwrites the stored password hash when the supplied
// shared secret matches. Check order: email shape, user existence, password
// strength, secret.
func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.ResetEmail(req.Email); err != nil {
		return err
	}

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User does not exist.")
		}
		return err
	}

	if err := s.validate.ResetPassword(req.Password); err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.resetSecret)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Secret.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if _, err := s.users.SaveUser(ctx, user); err != nil {
		return err
	}
	return nil
}
