// Package doctor exposes medical-card record keeping and the doctor's own
// schedule.
package doctor

import (
	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/middleware"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/service/medcard"
	"github.com/vetdesk/vetclinic-api/internal/service/request"
	"github.com/vetdesk/vetclinic-api/pkg/httputil"
)

type Handler struct {
	cards    medcard.MedcardServicer
	requests request.RequestServicer
	authMW   *middleware.AuthMiddleware
}

func NewHandler(cardSvc medcard.MedcardServicer, requestSvc request.RequestServicer, authMW *middleware.AuthMiddleware) *Handler {
	return &Handler{cards: cardSvc, requests: requestSvc, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctor := r.Group("/doctor", h.authMW.Authenticate())

	medicine := doctor.Group("/medicine", h.authMW.Authorize(model.OpManageMedicalCards))
	{
		medicine.POST("", h.CreateCard)
		medicine.GET("", h.ListCards)
		// Registered before the :id route so the literal path wins.
		medicine.GET("/current", h.ListCardsByPet)
		medicine.GET("/:id", h.GetCard)
		medicine.PUT("/:id", h.UpdateCard)
		medicine.DELETE("/:id", h.DeleteCard)
	}

	schedule := doctor.Group("", h.authMW.Authorize(model.OpViewOwnSchedule))
	{
		schedule.GET("/appointment", h.ListSchedule)
	}
}

func (h *Handler) CreateCard(c *gin.Context) {
	var req model.CreateMedicineCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	card, err := h.cards.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, card)
}

func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.cards.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, cards)
}

func (h *Handler) ListCardsByPet(c *gin.Context) {
	petID, err := httputil.ParseIDQuery(c, "clientPetId")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	cards, err := h.cards.ListByPet(c.Request.Context(), petID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, cards)
}

func (h *Handler) GetCard(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	card, err := h.cards.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, card)
}

func (h *Handler) UpdateCard(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdateMedicineCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	card, err := h.cards.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, card)
}

func (h *Handler) DeleteCard(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.cards.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Medicine card deleted")
}

func (h *Handler) ListSchedule(c *gin.Context) {
	claims := middleware.Principal(c)

	details, err := h.requests.ListDoctorSchedule(c.Request.Context(), claims.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, details)
}
