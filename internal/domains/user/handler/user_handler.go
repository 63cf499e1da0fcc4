package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/user/model"
	"library-api/internal/domains/user/service"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
	"library-api/pkg/logger"
)

// UserHandler serves /Auths. It is the only handler reachable without a token.
type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(svc service.ServiceInterface) *UserHandler {
	return &UserHandler{service: svc}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register handles POST /Auths/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  res.User.ID,
		"username": res.User.Username,
	})
	c.JSON(http.StatusCreated, res)
}

// Login handles POST /Auths/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := request.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, res)
}
