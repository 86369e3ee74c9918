// Package domain
package domain

import (
	"context"
	"errors"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type User struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`
}

// LoadUserByEmailRepository returns a nil user and a nil error when no
// document matches email.
type LoadUserByEmailRepository interface {
	Load(ctx context.Context, email string) (*User, error)
}

type CreateUserRepository interface {
	Create(ctx context.Context, user *User) error
}
