package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked on logout and checked on refresh.
type RefreshTokenRepository interface {
	Create(ctx context.Context, userID, token string, expiresAt int64) error
	IsRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	Revoke(ctx context.Context, token string) error
}
