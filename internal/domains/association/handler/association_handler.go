package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/association/model"
	"library-api/internal/domains/association/service"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

// AssociationHandler serves the author-event links under /Events and /Authors.
type AssociationHandler struct {
	service service.ServiceInterface
}

func NewAssociationHandler(svc service.ServiceInterface) *AssociationHandler {
	return &AssociationHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// GET /Events/:id/Authors
// ════════════════════════════════════════════════════════════════

func (h *AssociationHandler) ListAuthors(c *gin.Context) {
	eventID, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	authors, err := h.service.ListAuthors(c.Request.Context(), eventID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, authors)
}

// ════════════════════════════════════════════════════════════════
// POST /Events/:id/Authors
// ════════════════════════════════════════════════════════════════

func (h *AssociationHandler) AddAuthor(c *gin.Context) {
	eventID, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.AddAuthorRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.AddAuthor(c.Request.Context(), eventID, req.AuthorID); err != nil {
		_ = c.Error(err)
		return
	}
	response.CreatedAt(c, req.AuthorID, model.AuthorEvent{AuthorID: req.AuthorID, EventID: eventID})
}

// ════════════════════════════════════════════════════════════════
// DELETE /Events/:id/Authors/:authorId
// ════════════════════════════════════════════════════════════════

func (h *AssociationHandler) RemoveAuthor(c *gin.Context) {
	eventID, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	authorID, err := request.ParamID(c, "authorId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.RemoveAuthor(c.Request.Context(), eventID, authorID); err != nil {
		_ = c.Error(fmt.Errorf("unlink author %d from event %d: %w", authorID, eventID, err))
		return
	}
	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// GET /Authors/:id/Events
// ════════════════════════════════════════════════════════════════

func (h *AssociationHandler) ListEvents(c *gin.Context) {
	authorID, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := h.service.ListEvents(c.Request.Context(), authorID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, events)
}
