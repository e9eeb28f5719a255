package dto

import "github.com/shopspring/decimal"

// WithdrawRequest corpo de POST /saida-peca. Os nomes dos campos seguem o
// formulário original de saída de peça.
type WithdrawRequest struct {
	ProductCode string          `json:"productCode" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	ClientName  string          `json:"clientName" validate:"required"`
	SaleValue   decimal.Decimal `json:"saleValue"`
}
