package docstore

import (
	"context"
	"errors"
	"fmt"

	"loginsvc/internal/domain"
)

type UserRepository struct {
	users Collection
}

func NewUserRepository(users Collection) *UserRepository {
	return &UserRepository{users: users}
}

func (r *UserRepository) Load(ctx context.Context, email string) (*domain.User, error) {
	doc, err := r.users.FindOne(ctx, "email", email)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return decodeUser(doc), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	id, err := r.users.InsertOne(ctx, Document{
		"email":    user.Email,
		"password": user.Password,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = id
	return nil
}

func decodeUser(doc Document) *domain.User {
	user := &domain.User{}
	user.Email, _ = doc["email"].(string)
	user.Password, _ = doc["password"].(string)

	switch id := doc["_id"].(type) {
	case nil:
	case string:
		user.ID = id
	case interface{ Hex() string }:
		user.ID = id.Hex()
	default:
		user.ID = fmt.Sprint(id)
	}

	return user
}
