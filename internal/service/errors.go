package service

import "errors"

// Классы ошибок бизнес-слоя. Хендлеры переводят их в HTTP-статусы,
// всё неклассифицированное — 500.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

// fail строит ошибку заданного класса с человекочитаемым сообщением,
// которое уйдёт клиенту как есть.
func fail(kind error, msg string) error {
	return &apiError{kind: kind, msg: msg}
}
