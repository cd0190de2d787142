package api

import (
	"errors"
	"net/http"

	"gtnotes/notes-api/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteFile redirects to a presigned URL for the note's PDF. The bucket
// stays private; clients only ever see short-lived links
func (a *API) NoteFile(c *gin.Context) {
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

	if !canSeeNote(note, callerIdentity(c)) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Note not found",
			"requestID": requestID,
		})
		return
	}

	fileURL, err := a.Storage.PresignGet(c.Request.Context(), note.FileKey, note.FileName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to presign file URL", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Redirect(http.StatusFound, fileURL)
}
