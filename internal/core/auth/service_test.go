package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginsvc/internal/domain"
	"loginsvc/internal/event"
	"loginsvc/internal/logger"
)

type repoStub struct {
	user  *domain.User
	err   error
	email string
}

func (r *repoStub) Load(_ context.Context, email string) (*domain.User, error) {
	r.email = email
	return r.user, r.err
}

type comparerStub struct {
	ok  bool
	err error
}

func (c comparerStub) Compare(hash, password string) (bool, error) {
	return c.ok, c.err
}

type tokensStub struct {
	token string
	err   error
	user  *domain.User
}

func (g *tokensStub) Generate(user *domain.User) (string, error) {
	g.user = user
	return g.token, g.err
}

type fixture struct {
	repo     *repoStub
	comparer comparerStub
	tokens   *tokensStub
	bus      *event.Bus
	events   []any
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &repoStub{user: &domain.User{ID: "1", Email: "valid_email@mail.com", Password: "hash"}},
		comparer: comparerStub{ok: true},
		tokens:   &tokensStub{token: "valid_token"},
		bus:      event.New(logger.Nop()),
	}
	record := func(e any) { f.events = append(f.events, e) }
	f.bus.Subscribe(domain.EventLoginSucceeded, record)
	f.bus.Subscribe(domain.EventLoginFailed, record)
	return f
}

func (f *fixture) sut() domain.AuthUseCase {
	return NewService(f.repo, f.comparer, f.tokens, f.bus)
}

func TestAuthReturnsToken(t *testing.T) {
	f := newFixture()

	token, err := f.sut().Auth(context.Background(), "valid_email@mail.com", "valid_password")

	require.NoError(t, err)
	assert.Equal(t, "valid_token", token)
	assert.Equal(t, "valid_email@mail.com", f.repo.email)
	assert.Equal(t, f.repo.user, f.tokens.user)
	assert.Equal(t, []any{domain.LoginSucceeded{UserID: "1", Email: "valid_email@mail.com"}}, f.events)
}

func TestAuthUnknownEmail(t *testing.T) {
	f := newFixture()
	f.repo.user = nil

	token, err := f.sut().Auth(context.Background(), "invalid_email@mail.com", "any_password")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, token)
	require.Len(t, f.events, 1)
	assert.IsType(t, domain.LoginFailed{}, f.events[0])
}

func TestAuthWrongPassword(t *testing.T) {
	f := newFixture()
	f.comparer.ok = false

	_, err := f.sut().Auth(context.Background(), "valid_email@mail.com", "invalid_password")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, f.tokens.user)
}

func TestAuthPropagatesFailures(t *testing.T) {
	boom := errors.New("boom")

	t.Run("repository", func(t *testing.T) {
		f := newFixture()
		f.repo.err = boom
		_, err := f.sut().Auth(context.Background(), "e@mail.com", "p")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("comparer", func(t *testing.T) {
		f := newFixture()
		f.comparer.err = boom
		_, err := f.sut().Auth(context.Background(), "e@mail.com", "p")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("token generator", func(t *testing.T) {
		f := newFixture()
		f.tokens.err = boom
		_, err := f.sut().Auth(context.Background(), "e@mail.com", "p")
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, f.events)
	})
}

func TestAuthWithoutBus(t *testing.T) {
	f := newFixture()

	token, err := NewService(f.repo, f.comparer, f.tokens, nil).Auth(context.Background(), "e@mail.com", "p")

	require.NoError(t, err)
	assert.Equal(t, "valid_token", token)
}
