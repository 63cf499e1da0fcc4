// Package request holds the boundary checks every handler runs before calling a service.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/apperror"
)

// BindJSON decodes the body into dst and runs its ozzo rules.
// Both failures are reported as validation errors so the store is never touched.
func BindJSON(c *gin.Context, dst validation.Validatable) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected request body")
		return apperror.Wrap(apperror.KindValidation, decodeMessage(err), err)
	}
	if err := dst.Validate(); err != nil {
		return apperror.Wrap(apperror.KindValidation, err.Error(), err)
	}
	return nil
}

// decodeMessage describes a decoding failure without Go type names.
func decodeMessage(err error) string {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *time.ParseError
		appErr    *apperror.Error
	)
	switch {
	case errors.As(err, &appErr):
		return appErr.Message
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "request body must be a JSON object"
		}
		return "field " + strconv.Quote(typeErr.Field) + " has an invalid type"
	case errors.As(err, &timeErr):
		return "invalid timestamp " + strconv.Quote(timeErr.Value) + ": expected RFC 3339"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "request body is not valid JSON"
	case errors.Is(err, io.EOF):
		return "request body is empty"
	default:
		return "invalid request body"
	}
}

// ParamID reads an integer path parameter. Anything that is not an integer is a
// validation error; integers below 1 never name a record and are reported as not found.
func ParamID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation("%s must be an integer, got %q", name, raw)
	}
	if id <= 0 {
		return 0, apperror.NotFound("no record with %s %d", name, id)
	}
	return id, nil
}
