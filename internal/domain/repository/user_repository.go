package repository

import (
	"context"

	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.User, error)
}
