package server

import (
	"log"
	"strings"

	"hrm-backend/internal/auth"
	"hrm-backend/internal/config"
	"hrm-backend/internal/department"
	"hrm-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// New builds the fiber app with all middleware and routes wired. The store
// is injected so tests can run the full HTTP surface against the in-memory
// implementation.
func New(cfg *config.Config, store storage.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, " + auth.HeaderToken,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(store, tokens, cfg)
	deptSvc := department.NewService(store)

	api := app.Group("/api/v1")

	api.Post("/auth/signup", auth.TokenIfPresent(tokens), auth.SignupHandler(authSvc))
	api.Post("/auth/login", auth.LoginHandler(authSvc))
	api.Post("/auth/forgot-password", auth.ForgotPasswordHandler(authSvc))

	api.Post("/dept", auth.RequireToken(tokens), department.CreateHandler(deptSvc))
	api.Get("/dept", department.ListHandler(deptSvc))
	api.Put("/dept/:id", department.UpdateHandler(deptSvc))

	return app
}
