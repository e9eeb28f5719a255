package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item do catálogo de um usuário.
// Quantity nunca fica negativo após um movimento confirmado; Code (NCM/SH)
// é o código de negócio usado nas buscas, único por usuário mas não global.
type Product struct {
	ID        string
	UserID    string
	Name      string
	Quantity  int
	Price     decimal.Decimal // preço unitário
	Code      string          // coluna ncmsh
	EntryDate time.Time       // data_entrada, atualizada em edições
}
