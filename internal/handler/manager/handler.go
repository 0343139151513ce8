// Package manager exposes request triage: listing all requests, moving them
// through statuses and scheduling appointments.
package manager

import (
	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/middleware"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/service/catalog"
	"github.com/vetdesk/vetclinic-api/internal/service/request"
	"github.com/vetdesk/vetclinic-api/pkg/httputil"
)

type Handler struct {
	requests request.RequestServicer
	catalog  catalog.CatalogServicer
	authMW   *middleware.AuthMiddleware
}

func NewHandler(requestSvc request.RequestServicer, catalogSvc catalog.CatalogServicer, authMW *middleware.AuthMiddleware) *Handler {
	return &Handler{requests: requestSvc, catalog: catalogSvc, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	manager := r.Group("/manager", h.authMW.Authenticate(), h.authMW.Authorize(model.OpTriageRequests))
	{
		manager.GET("/request", h.ListRequests)
		manager.GET("/request/:id", h.GetRequest)
		manager.PUT("/request/:id", h.UpdateRequestStatus)
		manager.POST("/request", h.CreateAppointment)
		manager.GET("/status", h.ListStatuses)
	}
}

func (h *Handler) ListRequests(c *gin.Context) {
	details, err := h.requests.ListAllRequests(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, details)
}

func (h *Handler) GetRequest(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	detail, err := h.requests.GetAnyRequest(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}

func (h *Handler) UpdateRequestStatus(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdateRequestStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	detail, err := h.requests.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	detail, err := h.requests.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, detail)
}

func (h *Handler) ListStatuses(c *gin.Context) {
	statuses, err := h.catalog.ListStatuses(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, statuses)
}
