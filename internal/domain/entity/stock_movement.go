package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement representa uma saída de estoque registrada no livro (tabela saidas).
// Imutável após criado: ProductName é um snapshot do nome no momento da saída,
// para que o histórico sobreviva a renomeações posteriores do produto.
type StockMovement struct {
	ID          string
	UserID      string
	ProductCode string // código de negócio (ncmsh), referência fraca ao produto
	ProductName string
	Quantity    int // sempre positivo
	ClientName  string
	SaleValue   decimal.Decimal
	Date        time.Time // data_saida, default data da transação
}
