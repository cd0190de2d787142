package api

import (
	"net/http"

	"gtnotes/notes-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotePending returns the review queue. Admin-only, enforced by the
// route's middleware
func (a *API) NotePending(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	notes, err := a.Mod.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list pending notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if notes == nil {
		notes = []model.Note{}
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
	})
}
