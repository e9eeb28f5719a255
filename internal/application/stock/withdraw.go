package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/estoque-pro/internal/domain"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

// WithdrawUseCase registra a saída de um produto de forma transacional:
// bloqueio da linha do produto (SELECT FOR UPDATE), verificação de quantidade,
// inserção no livro de saídas e decremento do estoque, com Commit/Rollback.
type WithdrawUseCase struct {
	txRunner TxRunner
}

// NewWithdrawUseCase constrói o caso de uso.
func NewWithdrawUseCase(txRunner TxRunner) *WithdrawUseCase {
	return &WithdrawUseCase{txRunner: txRunner}
}

// WithdrawInput entrada para registrar uma saída de estoque.
// UserID vem sempre da identidade autenticada, nunca do corpo da requisição.
type WithdrawInput struct {
	UserID      string
	ProductCode string
	Quantity    int
	ClientName  string
	SaleValue   decimal.Decimal
}

// Withdraw valida a entrada e executa a saída dentro de uma transação.
//   - produto inexistente para esse usuário -> ErrNotFound (a busca é sempre
//     filtrada pelo dono; um código igual de outro usuário nunca é atingido)
//   - quantidade solicitada maior que a disponível -> ErrInsufficientStock,
//     sem nenhuma escrita
//   - caso contrário, grava a saída com snapshot do nome do produto e decrementa
//     a quantidade; a linha fica bloqueada até o Commit
func (uc *WithdrawUseCase) Withdraw(ctx context.Context, input WithdrawInput) error {
	if input.UserID == "" || strings.TrimSpace(input.ProductCode) == "" ||
		strings.TrimSpace(input.ClientName) == "" || input.Quantity <= 0 ||
		input.SaleValue.IsNegative() {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByCodeForUpdate(ctx, input.UserID, input.ProductCode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if input.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		movement := &entity.StockMovement{
			ID:          uuid.New().String(),
			UserID:      input.UserID,
			ProductCode: product.Code,
			ProductName: product.Name, // snapshot: o histórico sobrevive a renomeações
			Quantity:    input.Quantity,
			ClientName:  input.ClientName,
			SaleValue:   input.SaleValue,
			Date:        now,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(ctx, input.UserID, product.ID, product.Quantity-input.Quantity)
	})
}
