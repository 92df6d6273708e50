package handler

import (
	"errors"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/communityride/auth-service/internal/auth/dto"
	"github.com/communityride/auth-service/internal/auth/service"
	autherror "github.com/communityride/auth-service/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	sessions *service.SessionService
	logger   zerolog.Logger
}

func NewAuthHandler(sessions *service.SessionService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()
	if input.DeviceID == "" {
		input.DeviceID = c.Get("X-Device-Id")
	}

	outcome, err := h.sessions.Login(c.Context(), input)
	if err != nil {
		return h.internalError(c, err)
	}

	return h.respondOutcome(c, outcome)
}

func (h *AuthHandler) TwoFactorLogin(c *fiber.Ctx) error {
	var input dto.TwoFactorLoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()
	if input.DeviceID == "" {
		input.DeviceID = c.Get("X-Device-Id")
	}

	outcome, err := h.sessions.TwoFactorLogin(c.Context(), input)
	if err != nil {
		return h.internalError(c, err)
	}

	return h.respondOutcome(c, outcome)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IPAddress = c.IP()

	tokens, err := h.sessions.Refresh(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		return h.internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) RevokeToken(c *fiber.Ctx) error {
	var input dto.RevokeTokenInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.sessions.RevokeToken(c.Context(), input.RefreshToken); err != nil {
		return h.internalError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals(claimsKey).(*service.AccessClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	if err := h.sessions.Logout(c.Context(), claims.Subject, c.Query("deviceId")); err != nil {
		return h.internalError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals(claimsKey).(*service.AccessClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	err := h.sessions.ChangePassword(c.Context(), claims.Subject, input)
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusOK)
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	case errors.Is(err, autherror.ErrPasswordCompromised):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password found in a known breach"})
	default:
		return h.internalError(c, err)
	}
}

// respondOutcome maps a login outcome to the wire. Rejected and Locked share
// one 401 shape so unauthenticated probes cannot tell them apart; the locked
// case only adds a generic retry hint.
func (h *AuthHandler) respondOutcome(c *fiber.Ctx, outcome *domain.LoginOutcome) error {
	switch outcome.Kind {
	case domain.OutcomeSuccess:
		return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
			AccessToken:  outcome.AccessToken,
			RefreshToken: outcome.RefreshToken,
			ExpiresAt:    outcome.ExpiresAt,
			User:         dto.NewUserOutput(outcome.User),
		})
	case domain.OutcomeRequiresTwoFactor:
		return c.Status(fiber.StatusOK).JSON(dto.TwoFactorPendingResponse{
			RequiresTwoFactor: true,
			ChallengeRef:      outcome.ChallengeRef,
		})
	case domain.OutcomeRequiresVerification:
		return c.Status(fiber.StatusOK).JSON(dto.VerificationPendingResponse{
			RequiresVerification: true,
			User:                 dto.NewUserOutput(outcome.User),
		})
	case domain.OutcomeLocked:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":      "invalid credentials",
			"retryAfter": int(outcome.RetryAfter.Seconds()),
		})
	default:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
}

func (h *AuthHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
