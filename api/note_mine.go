package api

import (
	"net/http"

	"gtnotes/notes-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteMine returns the caller's own uploads regardless of status
func (a *API) NoteMine(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	notes, err := a.Notes.ListByUploader(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list user notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if notes == nil {
		notes = []model.Note{}
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
	})
}
