// Package security
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type BcryptComparer struct{}

func NewBcryptComparer() *BcryptComparer {
	return &BcryptComparer{}
}

// Compare reports a mismatch as (false, nil). Malformed hashes are errors.
func (BcryptComparer) Compare(hash, password string) (bool, error) {
	if hash == "" {
		return false, errors.New("empty password hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
