package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vetdesk/vetclinic-api/internal/apperror"
)

// ParseIDParam reads a positive numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("Incorrect %s: %s", name, raw)
	}
	return id, nil
}

// ParseIDQuery reads a positive numeric query parameter.
func ParseIDQuery(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("Incorrect %s: %s", name, raw)
	}
	return id, nil
}
