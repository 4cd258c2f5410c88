// Package oauth — вход через внешних провайдеров (Google, GitHub).
// Провайдер отдаёт профиль с email; заведение пользователя и выпуск
// токена остаются за сервисом.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// Profile — минимум, который нужен от провайдера.
type Profile struct {
	Username string
	Email    string
}

// Provider — один настроенный OAuth-провайдер.
type Provider struct {
	Name string

	cfg          *oauth2.Config
	fetchProfile func(ctx context.Context, client *http.Client) (Profile, error)
}

// NewGoogle настраивает вход через Google.
func NewGoogle(clientID, clientSecret, redirectBase string) *Provider {
	return &Provider{
		Name: "google",
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectBase + "/auth/google/callback",
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		fetchProfile: googleProfile,
	}
}

// NewGithub настраивает вход через GitHub.
func NewGithub(clientID, clientSecret, redirectBase string) *Provider {
	return &Provider{
		Name: "github",
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectBase + "/auth/github/callback",
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
		fetchProfile: githubProfile,
	}
}

// AuthCodeURL — адрес страницы согласия провайдера.
func (p *Provider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state)
}

// Exchange меняет код авторизации на профиль пользователя.
func (p *Provider) Exchange(ctx context.Context, code string) (Profile, error) {
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("exchange code: %w", err)
	}
	return p.fetchProfile(ctx, p.cfg.Client(ctx, token))
}

func googleProfile(ctx context.Context, client *http.Client) (Profile, error) {
	var v struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := getJSON(ctx, client, "https://www.googleapis.com/oauth2/v2/userinfo", &v); err != nil {
		return Profile{}, err
	}
	if v.Email == "" {
		return Profile{}, errors.New("google profile has no email")
	}
	return Profile{Username: v.Name, Email: v.Email}, nil
}

func githubProfile(ctx context.Context, client *http.Client) (Profile, error) {
	var u struct {
		Login string `json:"login"`
		Email string `json:"email"`
	}
	if err := getJSON(ctx, client, "https://api.github.com/user", &u); err != nil {
		return Profile{}, err
	}
	email := u.Email
	if email == "" {
		// Почта на GitHub может быть скрыта — берём primary из /user/emails.
		var list []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := getJSON(ctx, client, "https://api.github.com/user/emails", &list); err != nil {
			return Profile{}, err
		}
		for _, e := range list {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return Profile{}, errors.New("github email not found")
	}
	return Profile{Username: u.Login, Email: email}, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider responded %d for %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
