package api

import (
	"errors"
	"net/http"

	"gtnotes/notes-api/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) NoteFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	noteID := c.Param("id")

	note, err := a.Notes.FindByID(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Note not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Unmoderated notes don't exist as far as the public is concerned
	if !canSeeNote(note, callerIdentity(c)) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Note not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note": note,
	})
}
