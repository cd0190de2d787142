package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (a *API) Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
