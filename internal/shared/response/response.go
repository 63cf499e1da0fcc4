package response

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error payload returned by every endpoint.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Success responses

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes 201 with the Location of the new resource.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// CreatedAt is Created with Location set to the request path plus id.
func CreatedAt(c *gin.Context, id int64, data interface{}) {
	Created(c, strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+strconv.FormatInt(id, 10), data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
	})
}

func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
	})
}
