package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/config"
	"library-api/internal/shared/response"
	"library-api/pkg/container"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()

	cfg := &config.Config{
		App:   config.AppConfig{Environment: "test", Version: "test"},
		Store: config.StoreConfig{Driver: config.DriverMemory},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "library-api",
			Audience:          "library-api-clients",
			AccessTokenExpiry: 5,
		},
		Auth: config.AuthConfig{Enabled: authEnabled, BcryptCost: 4},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	c, err := container.Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	return &testServer{t: t, router: SetupRouter(c)}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) createAuthor(name, birthDate string) int64 {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/Authors", gin.H{"name": name, "birth_date": birthDate})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeID(s.t, w)
}

func (s *testServer) createBook(title string, year int, authorID int64) int64 {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/Books", gin.H{"title": title, "publication_year": year, "author_id": authorID})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeID(s.t, w)
}

func (s *testServer) createEvent(name string) int64 {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/Events", gin.H{
		"name":     name,
		"date":     "2030-05-01T10:00:00Z",
		"location": "Madrid",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeID(s.t, w)
}

func (s *testServer) listLen(path string) int {
	s.t.Helper()
	w := s.do(http.MethodGet, path, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var items []json.RawMessage
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &items))
	return len(items)
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) int64 {
	t.Helper()
	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.ID
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, w.Code, body.StatusCode)
	return body
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

// ========================================
// EXAMPLE SCENARIO
// ========================================

func TestAuthorBookPatchScenario(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(http.MethodPost, "/api/Authors", gin.H{"name": "X", "birth_date": "2000-01-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/Authors/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"name":"X","birth_date":"2000-01-01"}`, w.Body.String())

	bookID := s.createBook("Y", 2020, 1)
	assert.Positive(t, bookID)

	w = s.do(http.MethodPatch, idPath("/api/Books", bookID), gin.H{"publication_year": 2021})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodGet, idPath("/api/Books", bookID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var book struct {
		Title           string `json:"title"`
		PublicationYear int    `json:"publication_year"`
		AuthorID        int64  `json:"author_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "Y", book.Title)
	assert.Equal(t, 2021, book.PublicationYear)
	assert.Equal(t, int64(1), book.AuthorID)
}

// ========================================
// ID ASSIGNMENT
// ========================================

func TestCreateAuthor_IDsStrictlyIncrease(t *testing.T) {
	s := newTestServer(t, false)

	var last int64
	for i := 0; i < 5; i++ {
		id := s.createAuthor("Author "+strconv.Itoa(i), "1970-01-01")
		assert.Greater(t, id, last)
		last = id
	}

	// deleting the newest author must not let its id be reused
	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, idPath("/api/Authors", last), nil).Code)
	assert.Greater(t, s.createAuthor("Another", "1980-02-02"), int64(0))
}

// ========================================
// PARTIAL UPDATES
// ========================================

func TestPatchAuthor_EmptyBodyIsNoop(t *testing.T) {
	s := newTestServer(t, false)
	id := s.createAuthor("Octavia Butler", "1947-06-22")

	before := s.do(http.MethodGet, idPath("/api/Authors", id), nil).Body.String()

	w := s.do(http.MethodPatch, idPath("/api/Authors", id), gin.H{})
	require.Equal(t, http.StatusNoContent, w.Code)

	after := s.do(http.MethodGet, idPath("/api/Authors", id), nil).Body.String()
	assert.JSONEq(t, before, after)
}

func TestPatchAuthor_SingleFieldChangesOnlyThatField(t *testing.T) {
	s := newTestServer(t, false)
	id := s.createAuthor("Octavia Butler", "1947-06-22")

	w := s.do(http.MethodPatch, idPath("/api/Authors", id), gin.H{"name": "Octavia E. Butler"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, idPath("/api/Authors", id), nil)
	assert.JSONEq(t, `{"id":1,"name":"Octavia E. Butler","birth_date":"1947-06-22"}`, w.Body.String())
}

func TestPatch_RejectsExplicitNullAndMissingRecords(t *testing.T) {
	s := newTestServer(t, false)
	id := s.createAuthor("Octavia Butler", "1947-06-22")

	w := s.do(http.MethodPatch, idPath("/api/Authors", id), `{"name": null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	decodeError(t, w)

	w = s.do(http.MethodPatch, "/api/Authors/99", gin.H{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeError(t, w)
}

func TestPatchBook_UnknownAuthorIsInvalidForeignKey(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("N. K. Jemisin", "1972-09-19")
	bookID := s.createBook("The Fifth Season", 2015, authorID)

	w := s.do(http.MethodPatch, idPath("/api/Books", bookID), gin.H{"author_id": 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	decodeError(t, w)

	w = s.do(http.MethodGet, idPath("/api/Books", bookID), nil)
	assert.Contains(t, w.Body.String(), `"author_id":1`)
}

// ========================================
// FULL REPLACEMENT
// ========================================

func TestPut_IDMismatchIsRejectedWithoutMutation(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Isaac Asimov", "1920-01-02")
	bookID := s.createBook("Foundation", 1951, authorID)

	w := s.do(http.MethodPut, idPath("/api/Authors", authorID), gin.H{
		"id": authorID + 1, "name": "Changed", "birth_date": "1900-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	decodeError(t, w)

	w = s.do(http.MethodPut, idPath("/api/Books", bookID), gin.H{
		"id": bookID + 7, "title": "Changed", "publication_year": 1999, "author_id": authorID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Contains(t, s.do(http.MethodGet, idPath("/api/Authors", authorID), nil).Body.String(), "Isaac Asimov")
	assert.Contains(t, s.do(http.MethodGet, idPath("/api/Books", bookID), nil).Body.String(), "Foundation")
	assert.Equal(t, 1, s.listLen("/api/Books"))
}

func TestPut_ReplacesAndReportsMissing(t *testing.T) {
	s := newTestServer(t, false)
	id := s.createAuthor("Isaac Asimov", "1920-01-02")

	w := s.do(http.MethodPut, idPath("/api/Authors", id), gin.H{
		"id": id, "name": "Isaac Asimov", "birth_date": "1920-01-02",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodPut, "/api/Authors/50", gin.H{"id": 50, "name": "Ghost", "birth_date": "1920-01-02"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, s.listLen("/api/Authors"))
}

// ========================================
// FOREIGN KEYS
// ========================================

func TestCreateBook_UnknownAuthorPersistsNothing(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(http.MethodPost, "/api/Books", gin.H{"title": "Orphan", "publication_year": 2001, "author_id": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Contains(t, body.Message, "author")

	assert.Equal(t, 0, s.listLen("/api/Books"))
}

func TestCreate_ValidationFailures(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Ted Chiang", "1967-10-20")

	cases := []struct {
		name string
		path string
		body interface{}
	}{
		{"author missing name", "/api/Authors", gin.H{"birth_date": "1967-10-20"}},
		{"author bad date", "/api/Authors", gin.H{"name": "A", "birth_date": "20/10/1967"}},
		{"book year too old", "/api/Books", gin.H{"title": "T", "publication_year": 999, "author_id": authorID}},
		{"book year in future", "/api/Books", gin.H{"title": "T", "publication_year": 3000, "author_id": authorID}},
		{"event missing location", "/api/Events", gin.H{"name": "Fair", "date": "2030-01-01T00:00:00Z"}},
		{"biography too short", "/api/Biographies", gin.H{"author_id": authorID, "content": "short"}},
		{"malformed json", "/api/Authors", `{"name":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			decodeError(t, w)
		})
	}

	assert.Equal(t, 1, s.listLen("/api/Authors"))
	assert.Equal(t, 0, s.listLen("/api/Books"))
}

// ========================================
// ASSOCIATIONS
// ========================================

func TestAddAssociation_DuplicateConflicts(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Ursula K. Le Guin", "1929-10-21")
	eventID := s.createEvent("Book Fair")
	path := idPath("/api/Events", eventID) + "/Authors"

	w := s.do(http.MethodPost, path, gin.H{"author_id": authorID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"author_id":1,"event_id":1}`, w.Body.String())
	assert.Equal(t, 1, s.listLen(path))

	w = s.do(http.MethodPost, path, gin.H{"author_id": authorID})
	assert.Equal(t, http.StatusConflict, w.Code)
	decodeError(t, w)
	assert.Equal(t, 1, s.listLen(path))

	assert.Equal(t, 1, s.listLen(idPath("/api/Authors", authorID)+"/Events"))
}

func TestAddAssociation_MissingEndpoints(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Ursula K. Le Guin", "1929-10-21")
	eventID := s.createEvent("Book Fair")

	w := s.do(http.MethodPost, "/api/Events/77/Authors", gin.H{"author_id": authorID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, idPath("/api/Events", eventID)+"/Authors", gin.H{"author_id": 77})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/Events/77/Authors", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/Authors/77/Events", nil).Code)
}

func TestRemoveAssociation(t *testing.T) {
	s := newTestServer(t, false)
	a1 := s.createAuthor("Author One", "1950-01-01")
	a2 := s.createAuthor("Author Two", "1960-01-01")
	eventID := s.createEvent("Reading")
	path := idPath("/api/Events", eventID) + "/Authors"

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, path, gin.H{"author_id": a1}).Code)

	w := s.do(http.MethodDelete, idPath(path, a2), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeError(t, w)
	assert.Equal(t, 1, s.listLen(path))

	w = s.do(http.MethodDelete, idPath(path, a1), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, s.listLen(path))
}

// ========================================
// CASCADES
// ========================================

func TestDeleteAuthor_CascadesToChildren(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Frank Herbert", "1920-10-08")
	otherID := s.createAuthor("Brian Herbert", "1947-06-29")
	bookID := s.createBook("Dune", 1965, authorID)
	keptBookID := s.createBook("Sidney's Comet", 1983, otherID)
	eventID := s.createEvent("Convention")
	eventAuthors := idPath("/api/Events", eventID) + "/Authors"

	w := s.do(http.MethodPost, "/api/Biographies", gin.H{
		"author_id": authorID,
		"content":   strings.Repeat("Wrote Dune and its sequels over two decades. ", 3),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, idPath("/api/Biographies", authorID), w.Header().Get("Location"))

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, eventAuthors, gin.H{"author_id": authorID}).Code)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, eventAuthors, gin.H{"author_id": otherID}).Code)

	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, idPath("/api/Authors", authorID), nil).Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, idPath("/api/Authors", authorID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, idPath("/api/Books", bookID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, idPath("/api/Biographies", authorID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, idPath(eventAuthors, authorID), nil).Code)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, idPath("/api/Books", keptBookID), nil).Code)
	assert.Equal(t, 1, s.listLen(eventAuthors))
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, idPath("/api/Events", eventID), nil).Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, idPath("/api/Authors", authorID), nil).Code)
}

func TestDeleteEvent_UnlinksAuthors(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Frank Herbert", "1920-10-08")
	eventID := s.createEvent("Convention")

	require.Equal(t, http.StatusCreated,
		s.do(http.MethodPost, idPath("/api/Events", eventID)+"/Authors", gin.H{"author_id": authorID}).Code)
	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, idPath("/api/Events", eventID), nil).Code)

	assert.Equal(t, 0, s.listLen(idPath("/api/Authors", authorID)+"/Events"))
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, idPath("/api/Authors", authorID), nil).Code)
}

// ========================================
// BIOGRAPHIES
// ========================================

func TestBiography_Lifecycle(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Jorge Luis Borges", "1899-08-24")
	path := idPath("/api/Biographies", authorID)
	content := strings.Repeat("Argentine writer of short stories, essays and poems. ", 2)

	w := s.do(http.MethodPost, "/api/Biographies", gin.H{"author_id": 99, "content": content})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/Biographies", gin.H{"author_id": authorID, "content": content}).Code)

	w = s.do(http.MethodPost, "/api/Biographies", gin.H{"author_id": authorID, "content": content})
	assert.Equal(t, http.StatusConflict, w.Code)

	updated := strings.Repeat("Librarian in Buenos Aires and author of Ficciones. ", 2)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodPatch, path, gin.H{"content": updated}).Code)

	w = s.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ficciones")

	w = s.do(http.MethodPut, path, gin.H{"author_id": authorID + 1, "content": content})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, path, nil).Code)
}

// ========================================
// ERROR TRANSLATION
// ========================================

func TestErrorBodies(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(http.MethodGet, "/api/Authors/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeError(t, w)

	w = s.do(http.MethodGet, "/api/Authors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	decodeError(t, w)

	for _, path := range []string{"/api/Authors/0", "/api/Books/-3", "/api/Events/0"} {
		w = s.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		decodeError(t, w)
	}

	w = s.do(http.MethodGet, "/api/Nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	decodeError(t, w)

	w = s.do(http.MethodPost, "/api/Authors/1", gin.H{})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	decodeError(t, w)
}

func TestDecodeErrors_NameFieldOnly(t *testing.T) {
	s := newTestServer(t, false)
	authorID := s.createAuthor("Y", "1965-07-31")
	bookID := s.createBook("Y", 1997, authorID)

	w := s.do(http.MethodPatch, idPath("/api/Books", bookID), `{"publication_year": 2021.5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Contains(t, body.Message, "publication_year")
	assert.NotContains(t, body.Message, "Go struct")

	w = s.do(http.MethodPost, "/api/Books", `{"title": "Y", "publication_year": 2021.5, "author_id": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeError(t, w)
	assert.Equal(t, `field "publication_year" has an invalid type`, body.Message)

	w = s.do(http.MethodPost, "/api/Authors", `{"name": "Y",`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "request body is not valid JSON", decodeError(t, w).Message)

	w = s.do(http.MethodGet, idPath("/api/Books", bookID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"publication_year":1997`)
}

// ========================================
// AUTHENTICATION
// ========================================

func TestAuth_ProtectsEntityRoutes(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(http.MethodGet, "/api/Authors", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	decodeError(t, w)

	s.token = "not-a-jwt"
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/Authors", nil).Code)
	s.token = ""

	creds := gin.H{"username": "librarian", "password": "s3cret-pass"}
	w = s.do(http.MethodPost, "/api/Auths/register", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var auth struct {
		AccessToken string `json:"access_token"`
		User        struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	assert.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, "User", auth.User.Role)
	assert.NotContains(t, w.Body.String(), "s3cret-pass")

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/api/Auths/register", creds).Code)

	w = s.do(http.MethodPost, "/api/Auths/login", gin.H{"username": "librarian", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/Auths/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))

	s.token = auth.AccessToken
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/Authors", nil).Code)
}

// ========================================
// OPERATIONAL ENDPOINTS
// ========================================

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"store":"memory"`)

	s.do(http.MethodGet, "/api/Authors", nil)

	w = s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "library_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/Authors"`)
}
