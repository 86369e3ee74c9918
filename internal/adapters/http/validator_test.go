package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	sut := NewEmailValidator()

	tests := []struct {
		email string
		want  bool
	}{
		{"valid_email@mail.com", true},
		{"first.last+tag@sub.example.org", true},
		{"invalid_email", false},
		{"invalid@", false},
		{"@mail.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, sut.IsValid(tt.email))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	errs := ValidateStruct(&payload{Email: "nope", Password: "short"})

	assert.Equal(t, "The Email must be a valid email address.", errs["email"])
	assert.Equal(t, "The Password must be at least 8 characters.", errs["password"])
	assert.Nil(t, ValidateStruct(&payload{Email: "a@b.co", Password: "long-enough"}))
}
