package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/shared/apperror"
	"library-api/internal/shared/response"
	"library-api/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_MapsKinds(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("book 3 not found")) })
	r.GET("/dup", func(c *gin.Context) { _ = c.Error(fmt.Errorf("link: %w", apperror.Conflict("already linked"))) })
	r.GET("/fk", func(c *gin.Context) { _ = c.Error(apperror.InvalidForeignKey("author 9 missing")) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("pq: password authentication failed for user admin")) })

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/missing", http.StatusNotFound, "book 3 not found"},
		{"/dup", http.StatusConflict, "already linked"},
		{"/fk", http.StatusBadRequest, "author 9 missing"},
		{"/boom", http.StatusInternalServerError, "An internal server error occurred."},
	}
	for _, tc := range cases {
		w := serve(r, http.MethodGet, tc.path, nil)
		assert.Equal(t, tc.status, w.Code, tc.path)
		body := decodeError(t, w)
		assert.Equal(t, tc.status, body.StatusCode, tc.path)
		assert.Equal(t, tc.message, body.Message, tc.path)
		assert.NotContains(t, w.Body.String(), "password authentication")
	}
}

func TestRecovery_UniformBody(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("nil map write") })

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.ErrorBody{StatusCode: 500, Message: "An internal server error occurred."}, decodeError(t, w))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	w = serve(r, http.MethodGet, "/", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager(jwt.Config{Secret: "s3cr3t", Issuer: "library-api", Audience: "library-clients", Expiry: time.Hour})
	token, _, err := manager.GenerateToken(7, "ada", "User")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware(manager))
	r.GET("/me", func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, p.Username)
	})

	w := serve(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 401, decodeError(t, w).StatusCode)

	w = serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Token " + token}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer not-a-token"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer " + token}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada", w.Body.String())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://library.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/", http.Header{"Origin": {"https://library.example"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://library.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/", http.Header{"Origin": {"https://evil.example"}})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("library_test")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/Authors/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	serve(r, http.MethodGet, "/api/Authors/1", nil)
	serve(r, http.MethodGet, "/api/Authors/2", nil)

	w := serve(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(),
		`library_test_http_requests_total{method="GET",route="/api/Authors/:id",status="204"} 2`))
}
