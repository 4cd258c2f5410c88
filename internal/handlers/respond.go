package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// respondError переводит ошибку бизнес-слоя в HTTP-статус.
// Неклассифицированные ошибки наружу не показываем — только в лог.
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	default:
		logger.Errorw("internal error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, status, err.Error())
}

// checkRequest валидирует DTO по validate-тегам и возвращает
// человекочитаемое сообщение первой ошибки.
func checkRequest(req any) (string, bool) {
	err := validate.Struct(req)
	if err == nil {
		return "", true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request", false
	}
	switch verrs[0].Tag() {
	case "required":
		return "All fields are required", false
	case "email":
		return "Invalid email address", false
	case "gte", "min":
		return "Quantity must be non-negative", false
	default:
		return "Invalid request", false
	}
}
