// Package client exposes the client-facing surface: pets, service requests,
// appointments and public catalog browsing.
package client

import (
	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/middleware"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/service/catalog"
	"github.com/vetdesk/vetclinic-api/internal/service/doctor"
	"github.com/vetdesk/vetclinic-api/internal/service/pet"
	"github.com/vetdesk/vetclinic-api/internal/service/request"
	"github.com/vetdesk/vetclinic-api/pkg/httputil"
	"github.com/vetdesk/vetclinic-api/pkg/imagestore"
)

const imageField = "petImage"

type Handler struct {
	pets     pet.PetServicer
	requests request.RequestServicer
	catalog  catalog.CatalogServicer
	doctors  doctor.DoctorServicer
	images   *imagestore.Store
	authMW   *middleware.AuthMiddleware
	cache    *middleware.ResponseCache
}

func NewHandler(
	petSvc pet.PetServicer,
	requestSvc request.RequestServicer,
	catalogSvc catalog.CatalogServicer,
	doctorSvc doctor.DoctorServicer,
	images *imagestore.Store,
	authMW *middleware.AuthMiddleware,
	cache *middleware.ResponseCache,
) *Handler {
	return &Handler{
		pets:     petSvc,
		requests: requestSvc,
		catalog:  catalogSvc,
		doctors:  doctorSvc,
		images:   images,
		authMW:   authMW,
		cache:    cache,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	client := r.Group("/client")

	// Public catalog browsing, cached.
	browse := client.Group("", h.cache.Cache())
	{
		browse.GET("/service", h.ListServices)
		browse.GET("/service/:id", h.GetService)
		browse.GET("/doctor", h.ListDoctors)
		browse.GET("/doctor/:id", h.GetDoctor)
	}

	owned := client.Group("", h.authMW.Authenticate(), h.authMW.Authorize(model.OpManagePets))
	{
		owned.POST("/pet", h.CreatePet)
		owned.GET("/pet", h.ListPets)
		owned.GET("/pet/:id", h.GetPet)
		owned.PUT("/pet/:id", h.UpdatePet)
		owned.DELETE("/pet/:id", h.DeletePet)
	}

	requests := client.Group("", h.authMW.Authenticate(), h.authMW.Authorize(model.OpSubmitRequests))
	{
		requests.POST("/request", h.CreateRequest)
		requests.GET("/request", h.ListRequests)
		requests.GET("/request/:id", h.GetRequest)
	}

	appointments := client.Group("", h.authMW.Authenticate(), h.authMW.Authorize(model.OpViewAppointments))
	{
		appointments.GET("/appointment", h.ListAppointments)
		appointments.GET("/appointment/:id", h.GetAppointment)
		appointments.DELETE("/appointment/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreatePet(c *gin.Context) {
	claims := middleware.Principal(c)

	var req model.CreatePetRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	file, err := c.FormFile(imageField)
	if err != nil {
		httputil.RespondWithError(c, apperror.Validation("Pet image is required"))
		return
	}
	imageName, err := h.images.Save(c, file)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	created, err := h.pets.Create(c.Request.Context(), claims.ID, &req, imageName)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, created)
}

func (h *Handler) ListPets(c *gin.Context) {
	claims := middleware.Principal(c)

	pets, err := h.pets.ListByOwner(c.Request.Context(), claims.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, pets)
}

func (h *Handler) GetPet(c *gin.Context) {
	claims := middleware.Principal(c)
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	found, err := h.pets.Get(c.Request.Context(), claims.ID, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, found)
}

func (h *Handler) UpdatePet(c *gin.Context) {
	claims := middleware.Principal(c)
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdatePetRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	// A supplied image replaces the stored one; omission keeps it.
	imageName := ""
	if file, err := c.FormFile(imageField); err == nil {
		imageName, err = h.images.Save(c, file)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
	}

	updated, err := h.pets.Update(c.Request.Context(), claims.ID, id, &req, imageName)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) DeletePet(c *gin.Context) {
	claims := middleware.Principal(c)
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.pets.Delete(c.Request.Context(), claims.ID, id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Pet deleted")
}

func (h *Handler) CreateRequest(c *gin.Context) {
	claims := middleware.Principal(c)

	var req model.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	detail, err := h.requests.CreateRequest(c.Request.Context(), claims.ID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, detail)
}

func (h *Handler) ListRequests(c *gin.Context) {
	claims := middleware.Principal(c)

	details, err := h.requests.ListRequests(c.Request.Context(), claims.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, details)
}

func (h *Handler) GetRequest(c *gin.Context) {
	claims := middleware.Principal(c)
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	detail, err := h.requests.GetRequest(c.Request.Context(), claims.ID, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	claims := middleware.Principal(c)

	details, err := h.requests.ListAppointments(c.Request.Context(), claims.ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, details)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	claims := middleware.Principal(c)
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	detail, err := h.requests.GetAppointment(c.Request.Context(), claims.ID, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	claims := middleware.Principal(c)
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.requests.DeleteAppointment(c.Request.Context(), claims.ID, id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Appointment deleted")
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, services)
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	service, err := h.catalog.GetService(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, service)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	detail, err := h.doctors.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}
