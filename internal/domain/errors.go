package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrCNPJAlreadyExists = errors.New("CNPJ já cadastrado")
	ErrDuplicateCode     = errors.New("código de produto já cadastrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)
