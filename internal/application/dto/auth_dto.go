package dto

import "time"

// RegisterRequest cadastro de empresa: nome, CNPJ e senha.
type RegisterRequest struct {
	Name     string `json:"nome" validate:"required"`
	CNPJ     string `json:"cnpj" validate:"required"`
	Password string `json:"senha" validate:"required,min=8"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	CNPJ     string `json:"cnpj" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// UserResponse usuário sem campos sensíveis.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token JWT + dados do usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
