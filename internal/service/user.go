package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
	"github.com/shahedzaman612/Inventory-Backend/internal/mail"
	"github.com/shahedzaman612/Inventory-Backend/internal/model"
	"github.com/shahedzaman612/Inventory-Backend/internal/repo"
)

// TTL одноразовых токенов из писем.
const (
	verifyEmailTTL   = 24 * time.Hour
	resetPasswordTTL = time.Hour
)

// UserService — регистрация, аутентификация и восстановление доступа.
type UserService struct {
	users     repo.UserRepository
	tokens    *auth.TokenManager
	sender    mail.Sender
	clientURL string
}

func NewUserService(users repo.UserRepository, tokens *auth.TokenManager, sender mail.Sender, clientURL string) *UserService {
	return &UserService{users: users, tokens: tokens, sender: sender, clientURL: clientURL}
}

// Register создаёт неподтверждённого пользователя и шлёт письмо со ссылкой
// подтверждения. Если письмо не ушло, пользователь всё равно остаётся в БД.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fail(ErrValidation, "All fields are required")
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, fail(ErrConflict, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsVerified:   false,
	}
	if user, err = s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	emailToken, err := s.tokens.IssueScoped(user.ID, auth.PurposeVerifyEmail, verifyEmailTTL)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/verify-email/%s", s.clientURL, emailToken)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Click the link below to verify your email:</p><a href=%q>%s</a>",
		user.Username, url, url,
	)
	if err := s.sender.Send(user.Email, "Verify your email", body); err != nil {
		return nil, fmt.Errorf("send verification email: %w", err)
	}

	return user, nil
}

// VerifyEmail помечает пользователя подтверждённым. Повторный вызов
// безвреден: возвращается already=true без записи в БД.
func (s *UserService) VerifyEmail(ctx context.Context, token string) (already bool, err error) {
	userID, err := s.tokens.VerifyScoped(token, auth.PurposeVerifyEmail)
	if err != nil {
		return false, fail(ErrValidation, "Invalid or expired token")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fail(ErrValidation, "Invalid token")
		}
		return false, fmt.Errorf("lookup user: %w", err)
	}
	if user.IsVerified {
		return true, nil
	}
	user.IsVerified = true
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return false, nil
}

// Login проверяет учётные данные и выдаёт сессионный токен.
// Неподтверждённая почта — отказ до проверки пароля не доходит.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fail(ErrValidation, "Email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fail(ErrUnauthorized, "Invalid credentials")
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsVerified {
		return nil, "", fail(ErrForbidden, "Please verify your email first.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", fail(ErrUnauthorized, "Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ForgotPassword шлёт ссылку на сброс пароля (токен живёт час).
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(ErrNotFound, "User not found")
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	resetToken, err := s.tokens.IssueScoped(user.ID, auth.PurposeResetPassword, resetPasswordTTL)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/reset-password/%s", s.clientURL, resetToken)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Click the link below to reset your password (valid for 1 hour):</p><a href=%q>%s</a>",
		user.Username, url, url,
	)
	if err := s.sender.Send(user.Email, "Password Reset Request", body); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// ResetPassword меняет пароль по токену из письма.
func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if password == "" {
		return fail(ErrValidation, "Password is required")
	}
	userID, err := s.tokens.VerifyScoped(token, auth.PurposeResetPassword)
	if err != nil {
		return fail(ErrValidation, "Invalid or expired token")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(ErrValidation, "Invalid token")
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// OAuthLogin находит пользователя по email или заводит нового
// (подтверждённого, без локального пароля) и выдаёт сессионный токен.
func (s *UserService) OAuthLogin(ctx context.Context, provider, username, email string) (*model.User, string, error) {
	if email == "" {
		return nil, "", fail(ErrValidation, "OAuth profile has no email")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("lookup user: %w", err)
		}
		user = &model.User{
			ID:            uuid.NewString(),
			Username:      username,
			Email:         email,
			Role:          model.RoleUser,
			IsVerified:    true,
			OAuthProvider: &provider,
		}
		if user, err = s.users.CreateUser(ctx, user); err != nil {
			return nil, "", fmt.Errorf("create user: %w", err)
		}
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
