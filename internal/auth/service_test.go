package auth

import (
	"context"
	"testing"
	"time"

	"hrm-backend/internal/config"
	"hrm-backend/internal/models"
	"hrm-backend/internal/storage/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *memory.Store, uint) {
	t.Helper()

	store := memory.NewStore()
	dept, err := store.CreateDepartment(context.Background(), models.Department{
		Name:           "Engineering",
		OnboardingList: []string{"One", "Two", "Three"},
	})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:   testSigningKey,
		ResetSecret: "ibadan",
		SuperEmail:  "boss@corp.com",
		TokenTTL:    time.Hour,
	}
	svc := NewService(store, NewTokenManager(cfg.JWTSecret, cfg.TokenTTL), cfg)
	return svc, store, dept.ID
}

func TestSignupCreatesEmployee(t *testing.T) {
	svc, _, deptID := newTestService(t)

	req := validSignupRequest(deptID)
	req.Name = "test user"

	user, msg, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "test user was created successfully as a/an employee.", msg)
	assert.Equal(t, models.RoleEmployee, user.Role)
	require.NotNil(t, user.DepartmentID)
	assert.Equal(t, deptID, *user.DepartmentID)
	assert.NotEqual(t, "password", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestSignupSuperuserRole(t *testing.T) {
	svc, _, deptID := newTestService(t)

	req := validSignupRequest(deptID)
	req.Name = "Big Boss"
	req.Email = "Boss@Corp.com" // normalization must still match the designation

	user, msg, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperuser, user.Role)
	assert.Equal(t, "Big Boss was created successfully as a/an superuser.", msg)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, deptID := newTestService(t)

	_, _, err := svc.Signup(context.Background(), validSignupRequest(deptID))
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), validSignupRequest(deptID))
	fe := fiberError(t, err)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "User with email already exists.", fe.Message)
}

func TestLogin(t *testing.T) {
	svc, _, deptID := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, validSignupRequest(deptID))
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "tif@ni.com", Password: "tola"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusNotFound, fe.Code)
		assert.Equal(t, "User with email does not exist.", fe.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "test@email.com", Password: "tola"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
		assert.Equal(t, "Invalid password.", fe.Message)
	})

	t.Run("correct credentials issue a verifiable token", func(t *testing.T) {
		token, err := svc.Login(ctx, LoginRequest{Email: "test@email.com", Password: "password"})
		require.NoError(t, err)

		claims, err := svc.tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "test@email.com", claims.Email)
		assert.Equal(t, models.RoleEmployee, claims.Role)
	})
}

func TestForgotPassword(t *testing.T) {
	svc, _, deptID := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, validSignupRequest(deptID))
	require.NoError(t, err)

	t.Run("invalid email shape", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, ForgotPasswordRequest{Email: "test@email", Password: "customer", Secret: "ibadan"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Invalid email address.", fe.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, ForgotPasswordRequest{Email: "testing@email.com", Password: "customer", Secret: "ibadan"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusNotFound, fe.Code)
		assert.Equal(t, "User does not exist.", fe.Message)
	})

	t.Run("weak password", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, ForgotPasswordRequest{Email: "test@email.com", Password: "cust", Secret: "ibadan"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Invalid Password.", fe.Message)
	})

	t.Run("wrong secret", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, ForgotPasswordRequest{Email: "test@email.com", Password: "customer", Secret: "iba"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
		assert.Equal(t, "Invalid Secret.", fe.Message)
	})

	t.Run("valid reset rotates the credential", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, ForgotPasswordRequest{Email: "test@email.com", Password: "customer", Secret: "ibadan"})
		require.NoError(t, err)

		_, err = svc.Login(ctx, LoginRequest{Email: "test@email.com", Password: "password"})
		fe := fiberError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)

		token, err := svc.Login(ctx, LoginRequest{Email: "test@email.com", Password: "customer"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}
