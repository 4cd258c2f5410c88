package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

// AuthHandler обрабатывает регистрацию, вход и восстановление доступа.
type AuthHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

func NewAuthHandler(users *service.UserService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// userDTO — публичный профиль, уходящий клиенту при логине.
type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if msg, ok := checkRequest(req); !ok {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := h.Users.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusCreated, "User registered successfully. Please verify your email.")
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	already, err := h.Users.VerifyEmail(r.Context(), token)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	if already {
		writeMessage(w, http.StatusOK, "Email already verified.")
		return
	}
	writeMessage(w, http.StatusOK, "Email verified successfully. You can now login.")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": userDTO{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if msg, ok := checkRequest(req); !ok {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.Users.ForgotPassword(r.Context(), req.Email); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Password reset link sent to your email.")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if msg, ok := checkRequest(req); !ok {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.Users.ResetPassword(r.Context(), token, req.Password); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Password reset successful. You can now login.")
}
