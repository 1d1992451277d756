package dto

import "github.com/octobees/usuarios-web/internal/entity"

// LoginRequest captures credential input for the remote login endpoint.
type LoginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned by POST /login on acceptance.
type LoginResponse struct {
	Usuario entity.User `json:"usuario"`
	Message string      `json:"message,omitempty"`
}
