package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"loginsvc/internal/domain"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTGenerator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTGenerator(secret string, ttl time.Duration) *JWTGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTGenerator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (g *JWTGenerator) Generate(user *domain.User) (string, error) {
	if user == nil {
		return "", errors.New("nil user")
	}

	now := g.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

func (g *JWTGenerator) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
