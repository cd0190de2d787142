package api

import (
	"strings"

	"gtnotes/notes-api/model"
	"gtnotes/notes-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// callerIdentity reads the bearer token on routes that are public but
// show more to authenticated callers. Returns nil when no valid token is
// present
func callerIdentity(c *gin.Context) *security.Identity {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	id, err := security.VerifyToken(strings.TrimPrefix(header, "Bearer "), []byte(viper.GetString("jwt.secret")))
	if err != nil {
		return nil
	}

	return id
}

// canSeeNote reports whether a note outside the approved state is
// visible to the caller: only the uploader and admins
func canSeeNote(n *model.Note, id *security.Identity) bool {
	if n.Status == model.StatusApproved {
		return true
	}

	if id == nil {
		return false
	}

	return id.UserID == n.UploadedBy || id.Role == model.RoleAdmin
}
