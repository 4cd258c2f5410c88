package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/config"
	"github.com/shahedzaman612/Inventory-Backend/internal/oauth"
	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

const stateCookie = "oauth_state"

// OAuthHandler — вход через внешних провайдеров. После успешного обмена
// кода пользователь заводится/находится по email, а токен уезжает на
// фронтенд query-параметром редиректа.
type OAuthHandler struct {
	Users     *service.UserService
	Providers []*oauth.Provider
	Logger    *zap.SugaredLogger
	Config    *config.Config
}

func NewOAuthHandler(users *service.UserService, providers []*oauth.Provider, logger *zap.SugaredLogger, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{Users: users, Providers: providers, Logger: logger, Config: cfg}
}

// Begin ставит анти-CSRF state в cookie и уводит к провайдеру.
func (h *OAuthHandler) Begin(p *oauth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := randomState()
		if err != nil {
			h.Logger.Errorw("oauth: state generation failed", "provider", p.Name, "error", err)
			writeMessage(w, http.StatusInternalServerError, "OAuth login failed")
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/auth",
			HttpOnly: true,
			MaxAge:   int(10 * time.Minute / time.Second),
		})
		http.Redirect(w, r, p.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback сверяет state, меняет код на профиль и выдаёт сессию.
func (h *OAuthHandler) Callback(p *oauth.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(stateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
			writeMessage(w, http.StatusBadRequest, "Invalid OAuth state")
			return
		}

		profile, err := p.Exchange(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			h.Logger.Errorw("oauth: exchange failed", "provider", p.Name, "error", err)
			writeMessage(w, http.StatusInternalServerError, "OAuth login failed")
			return
		}

		_, token, err := h.Users.OAuthLogin(r.Context(), p.Name, profile.Username, profile.Email)
		if err != nil {
			respondError(w, h.Logger, err)
			return
		}

		http.Redirect(w, r, h.Config.ClientURL+"/oauth-success?token="+token, http.StatusFound)
	}
}

func randomState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
