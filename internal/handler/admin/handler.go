// Package admin exposes the reference-data CRUD: categories, services,
// posts and doctor accounts.
package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
	"github.com/vetdesk/vetclinic-api/internal/middleware"
	"github.com/vetdesk/vetclinic-api/internal/model"
	"github.com/vetdesk/vetclinic-api/internal/service/catalog"
	"github.com/vetdesk/vetclinic-api/internal/service/doctor"
	"github.com/vetdesk/vetclinic-api/pkg/httputil"
)

type Handler struct {
	catalog catalog.CatalogServicer
	doctors doctor.DoctorServicer
	authMW  *middleware.AuthMiddleware
}

func NewHandler(catalogSvc catalog.CatalogServicer, doctorSvc doctor.DoctorServicer, authMW *middleware.AuthMiddleware) *Handler {
	return &Handler{catalog: catalogSvc, doctors: doctorSvc, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin", h.authMW.Authenticate(), h.authMW.Authorize(model.OpManageCatalog))
	{
		admin.POST("/category", h.CreateCategory)
		admin.GET("/category", h.ListCategories)
		admin.GET("/category/:id", h.GetCategory)
		admin.PUT("/category/:id", h.UpdateCategory)
		admin.DELETE("/category/:id", h.DeleteCategory)

		admin.POST("/service", h.CreateService)
		admin.GET("/service", h.ListServices)
		admin.GET("/service/:id", h.GetService)
		admin.PUT("/service/:id", h.UpdateService)
		admin.DELETE("/service/:id", h.DeleteService)

		admin.POST("/post", h.CreatePost)
		admin.GET("/post", h.ListPosts)
		admin.GET("/post/:id", h.GetPost)
		admin.PUT("/post/:id", h.UpdatePost)
		admin.DELETE("/post/:id", h.DeletePost)

		admin.POST("/doctor", h.CreateDoctor)
		admin.GET("/doctor", h.ListDoctors)
		admin.GET("/doctor/:id", h.GetDoctor)
		admin.PUT("/doctor/:id", h.UpdateDoctor)
		admin.DELETE("/doctor/:id", h.DeleteDoctor)

		admin.GET("/status", h.ListStatuses)
	}
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, category)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	category, err := h.catalog.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Category deleted")
}

func (h *Handler) CreateService(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	service, err := h.catalog.CreateService(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, service)
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

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	service, err := h.catalog.UpdateService(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, service)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Service deleted")
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	post, err := h.catalog.CreatePost(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, post)
}

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.catalog.ListPosts(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	post, err := h.catalog.GetPost(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	post, err := h.catalog.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.catalog.DeletePost(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Post deleted")
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	detail, err := h.doctors.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondCreated(c, detail)
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

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperror.Validation("Invalid request body: %v", err))
		return
	}

	detail, err := h.doctors.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.doctors.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Doctor deleted")
}

func (h *Handler) ListStatuses(c *gin.Context) {
	statuses, err := h.catalog.ListStatuses(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, statuses)
}
