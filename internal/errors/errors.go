package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountLocked        = errors.New("account locked")
	ErrTokenExpired         = errors.New("refresh token expired")
	ErrTokenReused          = errors.New("refresh token reuse detected")
	ErrTokenNotFound        = errors.New("refresh token not found")
	ErrInvalidToken         = errors.New("invalid token")
	ErrVerificationRequired = errors.New("email verification required")
	ErrTwoFactorRequired    = errors.New("two-factor verification required")
	ErrPasswordCompromised  = errors.New("password found in breach corpus")
)
