package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-pro/internal/application/dto"
	"github.com/seu-usuario/estoque-pro/internal/application/stock"
	"github.com/seu-usuario/estoque-pro/internal/domain"
)

// StockHandler gerencia o registro de saídas de estoque (protegido).
type StockHandler struct {
	uc *stock.WithdrawUseCase
}

// NewStockHandler constrói o handler de saídas.
func NewStockHandler(uc *stock.WithdrawUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// SaidaPeca godoc
// @Summary      Registrar saída de produto
// @Description  Valida a quantidade disponível e registra a saída no livro junto
//
//	com o decremento do estoque, em uma única transação.
//
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawRequest  true  "productCode, quantity, clientName, saleValue"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/saida-peca [post]
func (h *StockHandler) SaidaPeca(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productCode, quantity (> 0) e clientName são obrigatórios"})
	}

	err := h.uc.Withdraw(c.Context(), stock.WithdrawInput{
		UserID:      userID,
		ProductCode: in.ProductCode,
		Quantity:    in.Quantity,
		ClientName:  in.ClientName,
		SaleValue:   in.SaleValue,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado para esse código"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Quantidade solicitada excede a quantidade disponível no estoque."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao fazer a saída do produto."})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Saída de produto registrada com sucesso!"})
}
