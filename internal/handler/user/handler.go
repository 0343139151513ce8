// Package user exposes registration, login and session introspection.
package user

import (
	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/middleware"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/service/auth"
	"github.com/vetdesk/vetclinic-api/pkg/httputil"
)

type Handler struct {
	service auth.AuthServicer
	authMW  *middleware.AuthMiddleware
}

func NewHandler(service auth.AuthServicer, authMW *middleware.AuthMiddleware) *Handler {
	return &Handler{service: service, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/user")
	{
		users.POST("/registration", h.Register)
		users.POST("/login", h.Login)
		users.GET("/auth", h.authMW.Authenticate(), h.Check)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, model.TokenResponse{Token: token})
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, model.TokenResponse{Token: token})
}

func (h *Handler) Check(c *gin.Context) {
	claims := middleware.Principal(c)
	if claims == nil {
		httputil.RespondWithError(c, apperror.Unauthorized("missing principal"))
		return
	}

	token, err := h.service.Check(c.Request.Context(), claims)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, model.TokenResponse{Token: token})
}
