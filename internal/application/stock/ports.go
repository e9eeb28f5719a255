package stock

import (
	"context"

	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa transação. Garante que a inserção no livro de saídas e o decremento
// do estoque sejam atômicos: ou os dois commitam, ou nenhum é aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
