package auth

import (
	"hrm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EmployeeResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Department       *uint  `json:"department"`
	DateOfEmployment string `json:"dOE"`
	RecentHire       bool   `json:"recentHire"`
	Role             string `json:"role"`
}

func newEmployeeResponse(u models.User) EmployeeResponse {
	return EmployeeResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Department:       u.DepartmentID,
		DateOfEmployment: u.DateOfEmployment,
		RecentHire:       u.RecentHire,
		Role:             string(u.Role),
	}
}

func SignupHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SignupRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		user, msg, err := svc.Signup(c.Context(), body)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  msg,
			"employee": newEmployeeResponse(user),
		})
	}
}

func LoginHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		token, err := svc.Login(c.Context(), body)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": "Login successful.",
			"jwt":     token,
		})
	}
}

func ForgotPasswordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ForgotPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		if err := svc.ForgotPassword(c.Context(), body); err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": "Password change successful.",
		})
	}
}
