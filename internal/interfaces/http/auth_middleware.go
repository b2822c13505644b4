package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/pkg/jwt"
)

// Locals keys set by the auth middleware.
const (
	LocalAdminID = "admin_id"
	LocalEmail   = "email"
)

// AuthMiddleware validates the Bearer token and loads the admin identity
// into c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		adminID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalAdminID, adminID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetAdminID returns the authenticated admin id from the context.
func GetAdminID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail returns the authenticated admin email from the context.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
