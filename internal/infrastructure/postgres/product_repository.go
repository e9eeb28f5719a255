package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/estoque-pro/internal/domain"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome, quantidade, preco, ncmsh, user_id, data_entrada`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, nome, quantidade, preco, ncmsh, user_id, data_entrada)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.Price,
		product.Code, product.UserID, product.EntryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID, sempre filtrado pelo dono.
func (r *ProductRepo) GetByID(ctx context.Context, userID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, userID), "get product")
}

// GetByCode obtém um produto pelo código de negócio, sempre filtrado pelo dono.
func (r *ProductRepo) GetByCode(ctx context.Context, userID, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ncmsh = $1 AND user_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, code, userID), "get product by code")
}

// GetByCodeForUpdate obtém o produto e bloqueia a linha (SELECT FOR UPDATE).
// Usar dentro de transação: o bloqueio vive até o Commit/Rollback.
func (r *ProductRepo) GetByCodeForUpdate(ctx context.Context, userID, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ncmsh = $1 AND user_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, code, userID), "get product for update")
}

// ListByUser lista o catálogo do usuário com paginação.
func (r *ProductRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE user_id = $1 ORDER BY data_entrada DESC, nome LIMIT $2 OFFSET $3`
	return r.list(ctx, query, "list products", userID, limit, offset)
}

// ListEntriesByPeriod lista produtos com data de entrada no período (inclusivo nos dois limites).
func (r *ProductRepo) ListEntriesByPeriod(ctx context.Context, userID string, start, end time.Time) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE user_id = $1 AND data_entrada BETWEEN $2 AND $3 ORDER BY data_entrada, nome`
	return r.list(ctx, query, "list entries", userID, start, end)
}

// ListOutOfStock lista produtos do usuário com quantidade zero, ignorando o período.
func (r *ProductRepo) ListOutOfStock(ctx context.Context, userID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE user_id = $1 AND quantidade = 0 ORDER BY nome`
	return r.list(ctx, query, "list out of stock", userID)
}

// Update atualiza um produto existente (inclui data_entrada, renovada na edição).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET nome = $2, quantidade = $3, preco = $4, ncmsh = $5, data_entrada = $6
		WHERE id = $1 AND user_id = $7`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.Price,
		product.Code, product.EntryDate, product.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity atualiza apenas a quantidade, sempre filtrado pelo dono
// (usado pelo motor de saídas, dentro da tx).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, userID, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantidade = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um produto do catálogo do usuário.
func (r *ProductRepo) Delete(ctx context.Context, userID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.Code, &p.UserID, &p.EntryDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) list(ctx context.Context, query, op string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.Code, &p.UserID, &p.EntryDate); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
