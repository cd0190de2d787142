package api

import (
	"errors"
	"net/http"

	"gtnotes/notes-api/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) NoteReject(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	note, err := a.Mod.Reject(c.Request.Context(), c.Param("id"), userID)
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

		zap.L().Error("Failed to reject note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note": note,
	})
}
