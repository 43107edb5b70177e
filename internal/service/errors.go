package service

import "errors"

// Ошибки сервисного слоя. HTTP-слой сопоставляет их с кодами ответа через errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpstream           = errors.New("upstream service error")
)
