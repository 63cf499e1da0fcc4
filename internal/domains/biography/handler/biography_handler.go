package handler

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/domains/biography/model"
	"library-api/internal/domains/biography/service"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

// BiographyHandler serves /Biographies. Biographies are keyed by author id.
type BiographyHandler struct {
	service service.ServiceInterface
}

func NewBiographyHandler(svc service.ServiceInterface) *BiographyHandler {
	return &BiographyHandler{service: svc}
}

// GET /Biographies
func (h *BiographyHandler) List(c *gin.Context) {
	bios, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, bios)
}

// GET /Biographies/:authorId
func (h *BiographyHandler) GetByAuthorID(c *gin.Context) {
	authorID, err := request.ParamID(c, "authorId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	bio, err := h.service.GetByAuthorID(c.Request.Context(), authorID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, bio)
}

// POST /Biographies
func (h *BiographyHandler) Create(c *gin.Context) {
	var req model.CreateBiographyRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.CreatedAt(c, created.AuthorID, created)
}

// PUT /Biographies/:authorId
func (h *BiographyHandler) Replace(c *gin.Context) {
	authorID, err := request.ParamID(c, "authorId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.ReplaceBiographyRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Replace(c.Request.Context(), authorID, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// PATCH /Biographies/:authorId
func (h *BiographyHandler) Patch(c *gin.Context) {
	authorID, err := request.ParamID(c, "authorId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.PatchBiographyRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Patch(c.Request.Context(), authorID, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// DELETE /Biographies/:authorId
func (h *BiographyHandler) Delete(c *gin.Context) {
	authorID, err := request.ParamID(c, "authorId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), authorID); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
