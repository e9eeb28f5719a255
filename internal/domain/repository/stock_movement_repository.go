package repository

import (
	"context"
	"time"

	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
)

// StockMovementRepository define o porto de persistência do livro de saídas (append-only).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByPeriod devolve saídas com data_saida em [start, end], inclusivo nos dois limites.
	ListByPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.StockMovement, error)
}
