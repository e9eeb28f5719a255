package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do livro de saídas sobre PostgreSQL (usável com pool ou tx).
// A tabela saidas é append-only: não há Update nem Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste uma saída de estoque. product_id guarda o código de negócio
// (ncmsh), referência fraca: o registro sobrevive à exclusão do produto.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO saidas (id, nome_produto, quantidade, nome_cliente, valor, user_id, product_id, data_saida)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductName, movement.Quantity, movement.ClientName,
		movement.SaleValue, movement.UserID, movement.ProductCode, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("create saida: %w", err)
	}
	return nil
}

// ListByPeriod lista saídas do usuário com data no período (inclusivo nos dois limites).
func (r *StockMovementRepo) ListByPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, nome_produto, quantidade, nome_cliente, valor, user_id, product_id, data_saida
		FROM saidas WHERE user_id = $1 AND data_saida BETWEEN $2 AND $3
		ORDER BY data_saida, nome_produto`
	rows, err := r.q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list saidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductName, &m.Quantity, &m.ClientName,
			&m.SaleValue, &m.UserID, &m.ProductCode, &m.Date); err != nil {
			return nil, fmt.Errorf("scan saida: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
