package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"library-api/internal/domains/user/model"
	"library-api/internal/domains/user/repository"
)

type userService struct {
	repo       repository.RepositoryInterface
	tokens     TokenIssuer
	bcryptCost int
}

// NewUserService hashes with bcryptCost; zero means bcrypt.DefaultCost.
func NewUserService(repo repository.RepositoryInterface, tokens TokenIssuer, bcryptCost int) ServiceInterface {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, &model.User{
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		Role:         model.DefaultRole,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("User registered")
	return s.issue(u)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if errors.Is(err, model.ErrUserNotFound) {
		log.Warn().Str("username", req.Username).Msg("Login failed: unknown user")
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// CompareHashAndPassword is constant time
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("username", req.Username).Msg("Login failed: wrong password")
		return nil, model.ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *userService) issue(u *model.User) (*model.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &model.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        *u,
	}, nil
}
