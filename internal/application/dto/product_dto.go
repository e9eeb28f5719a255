package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cadastro de produto no catálogo.
type CreateProductRequest struct {
	Name     string          `json:"nome" validate:"required"`
	Quantity int             `json:"quantidade" validate:"min=0"`
	Price    decimal.Decimal `json:"preco"`
	Code     string          `json:"codigo" validate:"required"`
}

// UpdateProductRequest edição de produto existente.
type UpdateProductRequest struct {
	Name     string          `json:"nome" validate:"required"`
	Quantity int             `json:"quantidade" validate:"min=0"`
	Price    decimal.Decimal `json:"preco"`
	Code     string          `json:"ncmsh" validate:"required"`
}

// ProductResponse produto serializado para a API.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"nome"`
	Quantity  int             `json:"quantidade"`
	Price     decimal.Decimal `json:"preco"`
	Code      string          `json:"ncmsh"`
	EntryDate string          `json:"data_entrada"` // dd/mm/aaaa
}

// ProductLookupResponse resposta de /buscar-produto: apenas o nome, ou null se não existe.
type ProductLookupResponse struct {
	Product *ProductName `json:"product"`
}

// ProductName payload mínimo para preencher o formulário de saída.
type ProductName struct {
	Name string `json:"nome"`
}
