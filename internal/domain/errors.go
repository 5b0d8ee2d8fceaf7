package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers los traducen a status HTTP: duplicado/no encontrado/entrada
// inválida -> 406 Not Acceptable (contrato heredado del API), el resto -> 500.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)
