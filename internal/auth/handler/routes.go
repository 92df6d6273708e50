package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/auth")

	auth.Post("/login", h.Login)
	auth.Post("/login/2fa", h.TwoFactorLogin)
	auth.Post("/refresh-token", h.Refresh)

	auth.Post("/revoke-token", h.RequireAuth, h.RevokeToken)
	auth.Post("/logout", h.RequireAuth, h.Logout)
	auth.Post("/change-password", h.RequireAuth, h.ChangePassword)
}
