package auth

import (
	"github.com/gofiber/fiber/v2"
)

// HeaderToken is the header the API reads bearer tokens from.
const HeaderToken = "x-access-token"

const (
	CtxUserIDKey    = "user_id"
	CtxUserEmailKey = "user_email"
	CtxUserRoleKey  = "user_role"
)

// RequireToken gates a route on a valid token.
func RequireToken(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(HeaderToken)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No token provided.")
		}
		return verifyInto(c, tokens, raw)
	}
}

// TokenIfPresent verifies a token only when the header is set. Signup uses
// this: anonymous signups pass through, but a caller presenting a token must
// present a valid one.
func TokenIfPresent(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(HeaderToken)
		if raw == "" {
			return c.Next()
		}
		return verifyInto(c, tokens, raw)
	}
}

func verifyInto(c *fiber.Ctx, tokens *TokenManager, raw string) error {
	claims, err := tokens.Verify(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
	}

	c.Locals(CtxUserIDKey, claims.UserID)
	c.Locals(CtxUserEmailKey, claims.Email)
	c.Locals(CtxUserRoleKey, claims.Role)

	return c.Next()
}
