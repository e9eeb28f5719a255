package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/estoque-pro/internal/application/dto"
	"github.com/seu-usuario/estoque-pro/internal/domain"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

// CatalogUseCase casos de uso do catálogo de produtos (CRUD com owner scoping).
type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

// NewCatalogUseCase constrói o caso de uso do catálogo.
func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo}
}

// CreateProduct cadastra um produto para o usuário; data_entrada é a data corrente.
// Devolve ErrDuplicateCode se o código já existe no catálogo desse usuário.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Quantity:  in.Quantity,
		Price:     in.Price,
		Code:      in.Code,
		EntryDate: time.Now(),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ListProducts lista o estoque do usuário com paginação.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, userID string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *ToProductResponse(p))
	}
	return out, nil
}

// FindByCode busca o produto pelo código de negócio, sempre no catálogo do usuário.
// Devolve nil (sem erro) se não existe: o formulário de saída trata como "não encontrado".
func (uc *CatalogUseCase) FindByCode(ctx context.Context, userID, code string) (*dto.ProductResponse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByCode(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// UpdateProduct edita um produto do usuário. Como no fluxo original de edição,
// data_entrada é renovada para a data corrente, o que reclassifica o produto
// como entrada do dia nos relatórios.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, userID, id string, in dto.UpdateProductRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" || in.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	product.Name = in.Name
	product.Quantity = in.Quantity
	product.Price = in.Price
	product.Code = in.Code
	product.EntryDate = time.Now()
	return uc.productRepo.Update(ctx, product)
}

// DeleteProduct remove um produto do catálogo do usuário.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, userID, id string) error {
	product, err := uc.productRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, userID, id)
}

// ToProductResponse converte a entidade para o DTO da API (data em dd/mm/aaaa).
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Price:     p.Price,
		Code:      p.Code,
		EntryDate: p.EntryDate.Format("02/01/2006"),
	}
}
