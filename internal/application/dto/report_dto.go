package dto

import "github.com/shopspring/decimal"

// ReportRequest período do relatório, datas no formato aaaa-mm-dd (input type=date).
type ReportRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// MovementResponse saída de estoque serializada para a API.
type MovementResponse struct {
	ProductName string          `json:"nome_produto"`
	Quantity    int             `json:"quantidade"`
	ClientName  string          `json:"nome_cliente"`
	SaleValue   decimal.Decimal `json:"valor"`
	Date        string          `json:"data_saida"` // dd/mm/aaaa
}

// ReportResponse relatório estruturado de um período.
// Entries/Exits respeitam o período; OutOfStock é independente do período.
type ReportResponse struct {
	Entries    []ProductResponse  `json:"entries"`
	Exits      []MovementResponse `json:"exits"`
	OutOfStock []ProductResponse  `json:"outOfStock"`
}
