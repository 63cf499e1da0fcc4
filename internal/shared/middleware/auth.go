package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/apperror"
	"library-api/internal/shared/response"
	"library-api/pkg/jwt"
)

const PrincipalKey = "principal"

// TokenVerifier validates a bearer token and returns its caller.
type TokenVerifier interface {
	Verify(token string) (*jwt.Principal, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>".
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		principal, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("Token rejected")
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	err := apperror.Unauthorized("%s", msg)
	response.AbortWithError(c, err.Kind.StatusCode(), err.Message)
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(c *gin.Context) (*jwt.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*jwt.Principal)
	return p, ok
}
