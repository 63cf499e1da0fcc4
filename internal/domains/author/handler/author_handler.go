package handler

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// GET /Authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, authors)
}

// ════════════════════════════════════════════════════════════════
// GET /Authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, a)
}

// ════════════════════════════════════════════════════════════════
// POST /Authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
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

// ════════════════════════════════════════════════════════════════
// PUT /Authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Replace(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.ReplaceAuthorRequest
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

// ════════════════════════════════════════════════════════════════
// PATCH /Authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Patch(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.PatchAuthorRequest
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

// ════════════════════════════════════════════════════════════════
// DELETE /Authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
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
