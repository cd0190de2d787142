package api

import (
	"net/http"

	"gtnotes/notes-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteList returns the approved notes everyone can browse
func (a *API) NoteList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	notes, err := a.Mod.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list approved notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if notes == nil {
		notes = []model.Note{}
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
	})
}
