package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — подпись не сошлась, токен истёк или повреждён.
// Других механизмов инвалидации нет: ревокация не ведётся, только срок.
var ErrInvalidToken = errors.New("invalid or expired token")

// Назначения одноразовых scoped-токенов. Сессионный токен назначения
// не несёт, поэтому scoped-токен нельзя подставить вместо сессии и наоборот.
const (
	PurposeVerifyEmail   = "verify-email"
	PurposeResetPassword = "reset-password"
)

// Identity — результат проверки сессионного токена.
type Identity struct {
	UserID string
	Role   string
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// TokenManager выпускает и проверяет подписанные HS256-токены.
// Секрет и TTL сессии задаются один раз при старте из конфигурации.
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewTokenManager создаёт менеджер токенов. ttl <= 0 заменяется часом.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), sessionTTL: ttl}
}

// Issue выпускает сессионный токен с id и ролью пользователя.
func (m *TokenManager) Issue(userID, role string) (string, error) {
	return m.sign(sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionTTL)),
		},
		Role: role,
	})
}

// IssueScoped выпускает одноразовый токен под конкретное назначение
// (подтверждение почты, сброс пароля) со своим TTL.
func (m *TokenManager) IssueScoped(userID, purpose string, ttl time.Duration) (string, error) {
	return m.sign(sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Purpose: purpose,
	})
}

// Verify проверяет сессионный токен и возвращает identity пользователя.
func (m *TokenManager) Verify(token string) (Identity, error) {
	claims, err := m.parse(token)
	if err != nil {
		return Identity{}, err
	}
	if claims.Purpose != "" || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.Subject, Role: claims.Role}, nil
}

// VerifyScoped проверяет scoped-токен и возвращает id пользователя.
// Несовпадение назначения — та же ошибка, что и битая подпись.
func (m *TokenManager) VerifyScoped(token, purpose string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Purpose != purpose || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (m *TokenManager) sign(claims sessionClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
