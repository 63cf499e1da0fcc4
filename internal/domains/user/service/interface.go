package service

import (
	"context"
	"time"

	"library-api/internal/domains/user/model"
)

type ServiceInterface interface {
	// Register creates a user with the default role and signs a token for it
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)

	// Login returns model.ErrInvalidCredentials for an unknown user or a wrong password
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
}

// TokenIssuer signs access tokens. Implemented by pkg/jwt.Manager.
type TokenIssuer interface {
	GenerateToken(userID int64, username, role string) (string, time.Time, error)
}
