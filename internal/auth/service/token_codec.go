package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/communityride/auth-service/internal/auth/service TokenGenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	autherror "github.com/communityride/auth-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

const refreshTokenIDBytes = 32

type TokenGenerator interface {
	IssueAccessToken(userID string, roles []string, tokenVersion int) (string, time.Time, error)
	VerifyAccessToken(tokenString string) (*AccessClaims, error)
	NewRefreshTokenID() (string, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type AccessClaims struct {
	jwt.RegisteredClaims
	Roles        []string `json:"roles"`
	TokenVersion int      `json:"token_version"`
}

// TokenCodec signs and verifies access tokens and mints opaque refresh token
// identifiers. Refresh tokens carry no claims; they are only ledger keys.
type TokenCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenCodec(secret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	return &TokenCodec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (c *TokenCodec) IssueAccessToken(userID string, roles []string, tokenVersion int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.accessTTL)

	claims := AccessClaims{
		Roles:        roles,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, expiresAt, nil
}

// VerifyAccessToken checks signature and expiry. Every failure mode collapses
// into ErrInvalidToken so callers cannot tell tampering from expiry.
func (c *TokenCodec) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

// NewRefreshTokenID returns a fresh 256-bit random identifier. It is never
// derived from user or time data.
func (c *TokenCodec) NewRefreshTokenID() (string, error) {
	buf := make([]byte, refreshTokenIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (c *TokenCodec) AccessTTL() time.Duration {
	return c.accessTTL
}

func (c *TokenCodec) RefreshTTL() time.Duration {
	return c.refreshTTL
}
