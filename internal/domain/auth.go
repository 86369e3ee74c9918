package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthUseCase verifies credentials. An empty token with a nil error means the
// credentials were rejected, same as ErrInvalidCredentials.
type AuthUseCase interface {
	Auth(ctx context.Context, email, password string) (string, error)
}

type PasswordComparer interface {
	Compare(hash, password string) (bool, error)
}

type TokenGenerator interface {
	Generate(user *User) (string, error)
}
