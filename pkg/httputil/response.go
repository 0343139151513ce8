// Package httputil defines the single response envelope every endpoint uses.
// The legacy API keyed each payload by an entity name ({"service": ...},
// {"fullRequest": ...}); all of those map to the "data" field here.
package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondWithSuccess sends a success response with payload.
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// RespondCreated sends a 201 with payload.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

// RespondWithMessage sends a success response carrying only a message.
func RespondWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Status: "success", Message: message})
}

// RespondWithError maps an application error to its wire status.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus(), Response{
		Status:  "error",
		Message: appErr.Message,
	})
}
