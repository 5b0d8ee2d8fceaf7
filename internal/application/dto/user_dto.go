package dto

import "time"

// RegisterRequest entrada para registrar un usuario de dispensario.
type RegisterRequest struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	Name       string `json:"name" form:"name"`
	Dispensary string `json:"dispensary" form:"dispensary"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID         string    `json:"id"`
	Dispensary string    `json:"dispensary"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
