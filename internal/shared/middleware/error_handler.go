package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/apperror"
	"library-api/internal/shared/response"
)

// ErrorHandler renders the last error a handler pushed with c.Error.
// Classified errors keep their message; anything else becomes a generic 500 and is only logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := apperror.KindOf(err)
		status := kind.StatusCode()

		if kind == apperror.KindInternal {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
		} else {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("kind", kind.String()).
				Msg("Request failed")
		}

		response.Error(c, status, apperror.PublicMessage(err))
	}
}

// NotFound is the NoRoute handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "resource not found")
	}
}

func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "method not allowed")
	}
}
