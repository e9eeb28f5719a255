package repository

import (
	"context"
	"time"

	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
// Toda leitura e escrita é filtrada pelo usuário dono (owner scoping).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, userID, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, userID, code string) (*entity.Product, error)
	// GetByCodeForUpdate bloqueia a linha (SELECT FOR UPDATE); usar apenas dentro de transação.
	GetByCodeForUpdate(ctx context.Context, userID, code string) (*entity.Product, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, error)
	// ListEntriesByPeriod devolve produtos com data_entrada em [start, end], inclusivo nos dois limites.
	ListEntriesByPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.Product, error)
	// ListOutOfStock devolve os produtos do usuário com quantidade exatamente zero.
	ListOutOfStock(ctx context.Context, userID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity grava a nova quantidade do produto do usuário; usar dentro
	// da transação de saída, após GetByCodeForUpdate.
	UpdateQuantity(ctx context.Context, userID, id string, quantity int) error
	Delete(ctx context.Context, userID, id string) error
}
