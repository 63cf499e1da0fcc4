package handler

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// GET /Books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, books)
}

// GET /Authors/:id/Books
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	books, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, books)
}

// GET /Books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, b)
}

// POST /Books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.CreatedAt(c, created.ID, created)
}

// PUT /Books/:id
func (h *BookHandler) Replace(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.ReplaceBookRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// PATCH /Books/:id
func (h *BookHandler) Patch(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.PatchBookRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Patch(c.Request.Context(), id, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// DELETE /Books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
