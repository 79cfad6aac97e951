package department

import (
	"fmt"
	"strconv"

	"hrm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Name           string   `json:"name"`
	OnboardingList []string `json:"onboardingList"`
}

type Response struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	OnboardingList []string `json:"onboardingList"`
	CreatedAt      string   `json:"created_at"`
}

func newResponse(d models.Department) Response {
	list := d.OnboardingList
	if list == nil {
		list = []string{}
	}
	return Response{
		ID:             d.ID,
		Name:           d.Name,
		OnboardingList: list,
		CreatedAt:      d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		dept, err := svc.Create(c.Context(), body.Name, body.OnboardingList)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    fmt.Sprintf("%s created successfully.", dept.Name),
			"department": newResponse(dept),
		})
	}
}

func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		depts, err := svc.List(c.Context())
		if err != nil {
			return err
		}

		res := make([]Response, 0, len(depts))
		for _, d := range depts {
			res = append(res, newResponse(d))
		}
		return c.JSON(res)
	}
}

func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Department does not exist.")
		}

		var body UpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}

		dept, err := svc.Update(c.Context(), uint(id), body)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("%s was updated successfully.", dept.Name),
		})
	}
}
