package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleProfile holds what we keep from Google's userinfo response.
// Subject is the stable per-account ID local users are keyed by
type GoogleProfile struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// HTTPClient lets tests swap the userinfo fetch for a stub
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GoogleOAuth wraps the authorization-code flow against Google. The
// callback handler exchanges the code and hands the resulting profile to
// the Authenticator
type GoogleOAuth struct {
	Config     *oauth2.Config
	HTTPClient HTTPClient
}

func NewGoogleOAuth() *GoogleOAuth {
	return &GoogleOAuth{
		Config: &oauth2.Config{
			ClientID:     viper.GetString("google.client_id"),
			ClientSecret: viper.GetString("google.client_secret"),
			Endpoint:     google.Endpoint,
			RedirectURL:  viper.GetString("google.redirect_url"),
			Scopes:       []string{"email", "profile"},
		},
		HTTPClient: http.DefaultClient,
	}
}

// AuthURL returns the Google consent page URL carrying the given state
func (g *GoogleOAuth) AuthURL(state string) string {
	return g.Config.AuthCodeURL(state)
}

// Exchange swaps an authorization code for the account's profile
func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := g.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response, %w", err)
	}

	if profile.Subject == "" {
		return nil, fmt.Errorf("userinfo response is missing the subject ID")
	}

	return &profile, nil
}
