// Package auth
package auth

import (
	"context"
	"fmt"

	"loginsvc/internal/domain"
	"loginsvc/internal/event"
)

type service struct {
	repo     domain.LoadUserByEmailRepository
	comparer domain.PasswordComparer
	tokens   domain.TokenGenerator
	bus      *event.Bus
}

func NewService(
	repo domain.LoadUserByEmailRepository,
	comparer domain.PasswordComparer,
	tokens domain.TokenGenerator,
	bus *event.Bus,
) domain.AuthUseCase {
	return &service{
		repo:     repo,
		comparer: comparer,
		tokens:   tokens,
		bus:      bus,
	}
}

func (s *service) Auth(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.Load(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		s.publish(domain.EventLoginFailed, domain.LoginFailed{Email: email, Reason: "unknown email"})
		return "", domain.ErrInvalidCredentials
	}

	ok, err := s.comparer.Compare(user.Password, password)
	if err != nil {
		return "", fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		s.publish(domain.EventLoginFailed, domain.LoginFailed{Email: email, Reason: "wrong password"})
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.publish(domain.EventLoginSucceeded, domain.LoginSucceeded{UserID: user.ID, Email: user.Email})
	return token, nil
}

func (s *service) publish(name string, e any) {
	if s.bus != nil {
		s.bus.Publish(name, e)
	}
}
