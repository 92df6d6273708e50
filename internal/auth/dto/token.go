package dto

import (
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
)

type UserOutput struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	EmailVerified bool     `json:"emailVerified"`
}

type TokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	User         *UserOutput `json:"user,omitempty"`
}

type TwoFactorPendingResponse struct {
	RequiresTwoFactor bool   `json:"requiresTwoFactor"`
	ChallengeRef      string `json:"challengeRef"`
}

type VerificationPendingResponse struct {
	RequiresVerification bool        `json:"requiresVerification"`
	User                 *UserOutput `json:"user"`
}

func NewUserOutput(u *domain.Identity) *UserOutput {
	if u == nil {
		return nil
	}
	return &UserOutput{
		ID:            u.ID,
		Email:         u.Email,
		Roles:         u.Roles,
		EmailVerified: u.EmailVerified,
	}
}
