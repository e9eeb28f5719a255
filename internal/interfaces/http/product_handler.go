package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-pro/internal/application/catalog"
	"github.com/seu-usuario/estoque-pro/internal/application/dto"
	"github.com/seu-usuario/estoque-pro/internal/domain"
)

// ProductHandler gerencia as requisições HTTP do catálogo de produtos (protegido).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler constrói o handler de produtos.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Estoque godoc
// @Summary      Listar estoque do usuário
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {array}   dto.ProductResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/estoque [get]
func (h *ProductHandler) Estoque(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
	}
	products, err := h.uc.ListProducts(c.Context(), userID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao carregar os produtos"})
	}
	return c.JSON(products)
}

// Cadastrar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "nome, quantidade, preco, codigo"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cadastro-produto [post]
func (h *ProductHandler) Cadastrar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e codigo são obrigatórios; quantidade não pode ser negativa"})
	}
	product, err := h.uc.CreateProduct(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCode) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CODE_EXISTS", Message: "já existe um produto com esse código"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao cadastrar o produto"})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Buscar godoc
// @Summary      Buscar produto pelo código
// @Description  Busca usada pelo formulário de saída para preencher o nome do produto.
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        code  query  string  true  "Código de negócio (ncmsh)"
// @Success      200  {object}  dto.ProductLookupResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/buscar-produto [get]
func (h *ProductHandler) Buscar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	code := c.Query("code")
	product, err := h.uc.FindByCode(c.Context(), userID, code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro code é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar produto"})
	}
	if product == nil {
		// Produto inexistente não é erro: o formulário mostra "não encontrado"
		return c.JSON(dto.ProductLookupResponse{Product: nil})
	}
	return c.JSON(dto.ProductLookupResponse{Product: &dto.ProductName{Name: product.Name}})
}

// Editar godoc
// @Summary      Editar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "nome, quantidade, preco, ncmsh"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/editar-produto/{id} [put]
func (h *ProductHandler) Editar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e ncmsh são obrigatórios; quantidade não pode ser negativa"})
	}
	if err := h.uc.UpdateProduct(c.Context(), userID, id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicateCode) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CODE_EXISTS", Message: "já existe um produto com esse código"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao editar o produto"})
	}
	return c.JSON(dto.MessageResponse{Message: "produto atualizado"})
}

// Excluir godoc
// @Summary      Excluir produto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/excluir-produto/{id} [delete]
func (h *ProductHandler) Excluir(c *fiber.Ctx) error {
	userID := GetUserID(c)
	id := c.Params("id")
	if err := h.uc.DeleteProduct(c.Context(), userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao excluir o produto"})
	}
	return c.JSON(dto.MessageResponse{Message: "produto excluído"})
}
