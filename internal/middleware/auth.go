package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
)

type ctxKey int

const identityKey ctxKey = iota

// WithAuth требует заголовок "Authorization: Bearer <token>" и кладёт
// identity пользователя в контекст. Отсутствие, мусор или просроченный
// токен — 401, дальше запрос не идёт.
func WithAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "No authorization header provided")
				return
			}
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Malformed token")
				return
			}
			identity, err := tokens.Verify(parts[1])
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает identity, положенный WithAuth.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
