package api

import (
	"net/http"
	"strings"

	"gtnotes/notes-api/model"
	"gtnotes/notes-api/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteUpload accepts a multipart form with a PDF under "file" plus the
// note metadata fields. The note is stored as pending with the canonical
// field values; only admins can make it public
func (a *API) NoteUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request",
			"requestID": requestID,
		})
		return
	}

	var input validators.NoteInput
	if err := c.ShouldBind(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind multipart form", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	formatted, fieldErrs := validators.NoteValidator(input)
	if len(fieldErrs) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"errors":    fieldErrs,
			"requestID": requestID,
		})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     validators.ErrNoFile.Error(),
			"requestID": requestID,
		})
		return
	}

	code, f, err := validators.FileValidator(fh)
	if err != nil {
		msg := err.Error()
		if code == http.StatusInternalServerError {
			zap.L().Error("Failed to validate file", zap.Error(err), zap.String("requestID", requestID))
			msg = "Internal server error"
		}

		c.AbortWithStatusJSON(code, gin.H{
			"error":     msg,
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	key, err := a.Storage.Upload(c.Request.Context(), f, fh.Size, "application/pdf")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upload file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	note := &model.Note{
		ID:          uuid.NewString(),
		Title:       formatted.Title,
		Course:      formatted.Course,
		Professor:   formatted.Professor,
		Semester:    formatted.Semester,
		Description: formatted.Description,
		FileKey:     key,
		FileName:    fh.Filename,
		FileSize:    fh.Size,
		FileType:    "application/pdf",
		Status:      model.StatusPending,
		UploadedBy:  userID,
	}

	if err := a.Notes.Create(c.Request.Context(), note); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"note": note,
	})
}
