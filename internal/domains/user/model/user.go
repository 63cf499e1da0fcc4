package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/apperror"
)

const DefaultRole = "User"

var (
	ErrUsernameTaken      = apperror.New(apperror.KindConflict, "username is already taken")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "invalid username or password")
	ErrUserNotFound       = apperror.New(apperror.KindNotFound, "user not found")
)

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

// RegisterRequest - POST /Auths/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.RuneLength(3, 50)),
		validation.Field(&r.Password, validation.Required, validation.RuneLength(6, 100)),
	)
}

// LoginRequest - POST /Auths/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse - JWT issued on register and login
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}
