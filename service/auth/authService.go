package authsvc

import (
	"context"
	"errors"
	"time"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/util/hash"
	jwtutil "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/util/jwt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// Service exchanges the operator password for a bearer token. There is a
// single operator identity; its bcrypt hash comes from config.
type Service interface {
	Login(ctx context.Context, password string) (string, error)
}

type service struct {
	passwordHash string
	jwtSecret    string
}

func New(passwordHash, jwtSecret string) Service {
	return &service{passwordHash: passwordHash, jwtSecret: jwtSecret}
}

func (s *service) Login(_ context.Context, password string) (string, error) {
	if password == "" || !hash.Check(s.passwordHash, password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.jwtSecret, "operator", "operator", tokenTTL)
}
