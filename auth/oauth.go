package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"github.com/rpupo63/personal-blog-backend/config"
	"github.com/rpupo63/personal-blog-backend/errs"
)

// Provider wraps one OAuth provider's code-exchange configuration. The
// provider's consent UX lives entirely outside this service; all we do here
// is trade an authorization code for a verified identity.
type Provider struct {
	Name        string
	conf        *oauth2.Config
	userInfoURL string
}

// Providers builds the configured OAuth providers from the environment.
// Providers without credentials are left out.
func Providers(cfg map[string]string) map[string]Provider {
	providers := make(map[string]Provider)

	if id := config.GetString(cfg, "GOOGLE_CLIENT_ID", ""); id != "" {
		providers["google"] = Provider{
			Name: "google",
			conf: &oauth2.Config{
				ClientID:     id,
				ClientSecret: config.GetString(cfg, "GOOGLE_CLIENT_SECRET", ""),
				RedirectURL:  config.GetString(cfg, "OAUTH_REDIRECT_URL", ""),
				Scopes: []string{
					"https://www.googleapis.com/auth/userinfo.email",
					"https://www.googleapis.com/auth/userinfo.profile",
				},
				Endpoint: google.Endpoint,
			},
			userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		}
	}

	if id := config.GetString(cfg, "GITHUB_ID", ""); id != "" {
		providers["github"] = Provider{
			Name: "github",
			conf: &oauth2.Config{
				ClientID:     id,
				ClientSecret: config.GetString(cfg, "GITHUB_SECRET", ""),
				RedirectURL:  config.GetString(cfg, "OAUTH_REDIRECT_URL", ""),
				Scopes:       []string{"read:user", "user:email"},
				Endpoint:     github.Endpoint,
			},
			userInfoURL: "https://api.github.com/user",
		}
	}

	return providers
}

// userInfo covers the fields we need from both Google and GitHub userinfo
// payloads.
type userInfo struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Login     string `json:"login"`
	Picture   string `json:"picture"`
	AvatarURL string `json:"avatar_url"`
}

// FetchIdentity exchanges an authorization code and fetches the provider's
// userinfo endpoint. The identity may still lack an email (GitHub users can
// hide it); EnsureUser rejects those sign-ins.
func (p Provider) FetchIdentity(ctx context.Context, code string) (Identity, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return Identity{}, errs.NewUnauthorizedError(fmt.Sprintf("%s code exchange failed", p.Name))
	}

	client := p.conf.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return Identity{}, errs.NewInternalError(fmt.Sprintf("%s userinfo request failed", p.Name))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, errs.NewUnauthorizedError(fmt.Sprintf("%s userinfo returned status %d", p.Name, resp.StatusCode))
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, errs.NewInternalError(fmt.Sprintf("%s userinfo payload malformed", p.Name))
	}

	identity := Identity{
		Email: info.Email,
		Name:  info.Name,
	}
	if identity.Name == "" {
		identity.Name = info.Login
	}
	if info.Picture != "" {
		identity.Image = &info.Picture
	} else if info.AvatarURL != "" {
		identity.Image = &info.AvatarURL
	}
	return identity, nil
}
