package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

// bindJSON decodes the request body into obj. An empty body leaves obj at its
// zero value so the service reports which fields are missing.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	status, body := response.FromError(err)
	c.JSON(status, body)
}
