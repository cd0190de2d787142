package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *API) GoogleSignup(c *gin.Context) {
	c.Redirect(http.StatusFound, a.Google.AuthURL("signup"))
}

func (a *API) GoogleLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, a.Google.AuthURL("login"))
}

// GoogleCallback completes the flow: exchanges the code for a profile,
// maps it to a local user and sends the session token back to the SPA
// via a redirect
func (a *API) GoogleCallback(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	code := c.Query("code")
	if code == "" || c.Query("error") != "" {
		zap.L().Debug("Google flow denied or missing code", zap.String("requestID", requestID))

		c.Redirect(http.StatusFound, "/api/auth/google/failure")
		return
	}

	profile, err := a.Google.Exchange(c.Request.Context(), code)
	if err != nil {
		zap.L().Error("Failed to complete Google code exchange", zap.Error(err), zap.String("requestID", requestID))

		c.Redirect(http.StatusFound, "/api/auth/google/failure")
		return
	}

	_, token, err := a.Auth.FederatedLogin(c.Request.Context(), profile)
	if err != nil {
		zap.L().Error("Failed to log in Google user", zap.Error(err), zap.String("requestID", requestID))

		c.Redirect(http.StatusFound, "/api/auth/google/failure")
		return
	}

	redirectURL := viper.GetString("host.frontend_url")
	if strings.Contains(redirectURL, "?") {
		redirectURL += "&token=" + url.QueryEscape(token)
	} else {
		redirectURL += "?token=" + url.QueryEscape(token)
	}

	c.Redirect(http.StatusFound, redirectURL)
}

func (a *API) GoogleFailure(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Google authentication failed",
	})
}
