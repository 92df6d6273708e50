package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// RequireAuth validates the bearer token against both its signature and the
// live identity (token version, account status) before letting the request
// through.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	claims, err := h.sessions.VerifyAccess(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}
