package entity

import "time"

// User representa uma conta de empresa identificada pelo CNPJ.
// Todos os produtos e saídas pertencem a um User.
type User struct {
	ID           string
	Name         string
	CNPJ         string // único no sistema, armazenado apenas com dígitos
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	CreatedAt    time.Time
}
