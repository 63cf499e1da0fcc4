package handler

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/domains/event/model"
	"library-api/internal/domains/event/service"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

// EventHandler serves /Events.
type EventHandler struct {
	service service.ServiceInterface
}

func NewEventHandler(svc service.ServiceInterface) *EventHandler {
	return &EventHandler{service: svc}
}

// GET /Events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, events)
}

// GET /Events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	ev, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, ev)
}

// POST /Events
func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
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

// PUT /Events/:id
func (h *EventHandler) Replace(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.ReplaceEventRequest
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

// PATCH /Events/:id
func (h *EventHandler) Patch(c *gin.Context) {
	id, err := request.ParamID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.PatchEventRequest
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

// DELETE /Events/:id
func (h *EventHandler) Delete(c *gin.Context) {
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
