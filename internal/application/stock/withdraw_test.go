package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-pro/internal/application/stock"
	"github.com/seu-usuario/estoque-pro/internal/domain"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo guarda produtos em memória com o mesmo owner scoping do
// repositório real: toda busca filtra por userID.
type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, userID, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.UserID == userID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, userID, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.UserID == userID && p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByCodeForUpdate(ctx context.Context, userID, code string) (*entity.Product, error) {
	return r.GetByCode(ctx, userID, code)
}

func (r *fakeProductRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListEntriesByPeriod(_ context.Context, userID string, start, end time.Time) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID && !p.EntryDate.Before(start) && !p.EntryDate.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListOutOfStock(_ context.Context, userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID && p.Quantity == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range r.products {
		if p.UserID == product.UserID && p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, userID, id string, quantity int) error {
	for _, p := range r.products {
		if p.UserID == userID && p.ID == id {
			p.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, userID, id string) error {
	for i, p := range r.products {
		if p.UserID == userID && p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeMovementRepo livro de saídas em memória.
type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByPeriod(_ context.Context, userID string, start, end time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.UserID == userID && !m.Date.Before(start) && !m.Date.After(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner executa fn diretamente com os fakes, sem transação real.
// Se fn devolve erro, descarta as escritas feitas (simula o Rollback).
type fakeTxRunner struct {
	movementRepo *fakeMovementRepo
	productRepo  *fakeProductRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	// Snapshot para simular rollback
	movementsBefore := make([]*entity.StockMovement, len(tr.movementRepo.movements))
	copy(movementsBefore, tr.movementRepo.movements)
	quantitiesBefore := make(map[string]int, len(tr.productRepo.products))
	for _, p := range tr.productRepo.products {
		quantitiesBefore[p.ID] = p.Quantity
	}

	if err := fn(tr.movementRepo, tr.productRepo); err != nil {
		tr.movementRepo.movements = movementsBefore
		for _, p := range tr.productRepo.products {
			p.Quantity = quantitiesBefore[p.ID]
		}
		return err
	}
	return nil
}

func newFixture() (*stock.WithdrawUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := &fakeProductRepo{}
	movementRepo := &fakeMovementRepo{}
	uc := stock.NewWithdrawUseCase(&fakeTxRunner{movementRepo: movementRepo, productRepo: productRepo})
	return uc, productRepo, movementRepo
}

func seedProduct(repo *fakeProductRepo, userID, id, code, name string, quantity int) *entity.Product {
	p := &entity.Product{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Quantity:  quantity,
		Price:     decimal.NewFromFloat(39.90),
		Code:      code,
		EntryDate: time.Now(),
	}
	repo.products = append(repo.products, p)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Withdraw
// ──────────────────────────────────────────────────────────────────────────────

// Saída com quantidade disponível: decrementa o estoque e grava exatamente
// um registro no livro, com snapshot do nome do produto.
func TestWithdraw_SaidaValidaDecrementaEstoqueEGravaSaida(t *testing.T) {
	uc, productRepo, movementRepo := newFixture()
	seedProduct(productRepo, "user-1", "prod-1", "8421.23.00", "Filtro de óleo", 10)

	err := uc.Withdraw(context.Background(), stock.WithdrawInput{
		UserID:      "user-1",
		ProductCode: "8421.23.00",
		Quantity:    4,
		ClientName:  "Oficina do João",
		SaleValue:   decimal.NewFromFloat(159.60),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, productRepo.products[0].Quantity, "10 - 4 deve deixar 6 em estoque")
	require.Len(t, movementRepo.movements, 1, "deve gravar exatamente uma saída")

	m := movementRepo.movements[0]
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, "8421.23.00", m.ProductCode)
	assert.Equal(t, "Filtro de óleo", m.ProductName, "o nome vem do produto, não do cliente")
	assert.Equal(t, 4, m.Quantity)
	assert.Equal(t, "Oficina do João", m.ClientName)
	assert.True(t, decimal.NewFromFloat(159.60).Equal(m.SaleValue))
	assert.NotEmpty(t, m.ID)
}

// Quantidade maior que a disponível: ErrInsufficientStock e nenhuma escrita.
// Repetir a tentativa não muda nada (sem efeito acumulado).
func TestWithdraw_QuantidadeInsuficienteNaoEscreveNada(t *testing.T) {
	uc, productRepo, movementRepo := newFixture()
	seedProduct(productRepo, "user-1", "prod-1", "8421.23.00", "Filtro de óleo", 10)

	input := stock.WithdrawInput{
		UserID:      "user-1",
		ProductCode: "8421.23.00",
		Quantity:    11,
		ClientName:  "Oficina do João",
		SaleValue:   decimal.NewFromFloat(100),
	}
	for i := 0; i < 3; i++ {
		err := uc.Withdraw(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}

	assert.Equal(t, 10, productRepo.products[0].Quantity, "o estoque não pode mudar")
	assert.Empty(t, movementRepo.movements, "nenhuma saída pode ser gravada")
}

// Cenário completo: estoque 10, saída de 4 (sobram 6), tentativa de 10 é
// rejeitada e o estoque continua em 6. Uma saída de 6 então zera o produto.
func TestWithdraw_SequenciaDeSaidas(t *testing.T) {
	uc, productRepo, movementRepo := newFixture()
	seedProduct(productRepo, "user-1", "prod-1", "8421.23.00", "Filtro de óleo", 10)

	withdraw := func(qty int) error {
		return uc.Withdraw(context.Background(), stock.WithdrawInput{
			UserID:      "user-1",
			ProductCode: "8421.23.00",
			Quantity:    qty,
			ClientName:  "Oficina do João",
			SaleValue:   decimal.NewFromInt(10),
		})
	}

	require.NoError(t, withdraw(4))
	assert.Equal(t, 6, productRepo.products[0].Quantity)

	assert.ErrorIs(t, withdraw(10), domain.ErrInsufficientStock)
	assert.Equal(t, 6, productRepo.products[0].Quantity, "a rejeição não pode alterar o estoque")

	require.NoError(t, withdraw(6))
	assert.Equal(t, 0, productRepo.products[0].Quantity, "saída igual ao disponível zera o produto")
	assert.Len(t, movementRepo.movements, 2)
}

// Código inexistente para o usuário: ErrNotFound, sem escrita.
func TestWithdraw_CodigoInexistenteDevolveNotFound(t *testing.T) {
	uc, productRepo, movementRepo := newFixture()
	seedProduct(productRepo, "user-1", "prod-1", "8421.23.00", "Filtro de óleo", 10)

	err := uc.Withdraw(context.Background(), stock.WithdrawInput{
		UserID:      "user-1",
		ProductCode: "9999.99.99",
		Quantity:    1,
		ClientName:  "Oficina do João",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movementRepo.movements)
}

// Isolamento entre usuários: o mesmo código cadastrado por outro usuário nunca
// é atingido; para quem não tem o produto, a saída é NotFound.
func TestWithdraw_CodigoDeOutroUsuarioNaoEAtingido(t *testing.T) {
	uc, productRepo, movementRepo := newFixture()
	seedProduct(productRepo, "user-1", "prod-1", "8421.23.00", "Filtro de óleo", 10)
	seedProduct(productRepo, "user-2", "prod-2", "8421.23.00", "Filtro premium", 50)

	err := uc.Withdraw(context.Background(), stock.WithdrawInput{
		UserID:      "user-3",
		ProductCode: "8421.23.00",
		Quantity:    1,
		ClientName:  "Cliente",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A saída do user-1 só pode tocar o estoque do user-1
	require.NoError(t, uc.Withdraw(context.Background(), stock.WithdrawInput{
		UserID:      "user-1",
		ProductCode: "8421.23.00",
		Quantity:    3,
		ClientName:  "Cliente",
	}))
	assert.Equal(t, 7, productRepo.products[0].Quantity)
	assert.Equal(t, 50, productRepo.products[1].Quantity, "o estoque de outro usuário não pode mudar")
	require.Len(t, movementRepo.movements, 1)
	assert.Equal(t, "user-1", movementRepo.movements[0].UserID)
}

// Entrada inválida: campos obrigatórios vazios, quantidade <= 0 ou valor negativo.
func TestWithdraw_EntradaInvalida(t *testing.T) {
	uc, _, movementRepo := newFixture()

	cases := []struct {
		name  string
		input stock.WithdrawInput
	}{
		{"sem usuário", stock.WithdrawInput{ProductCode: "x", Quantity: 1, ClientName: "c"}},
		{"sem código", stock.WithdrawInput{UserID: "u", Quantity: 1, ClientName: "c"}},
		{"sem cliente", stock.WithdrawInput{UserID: "u", ProductCode: "x", Quantity: 1}},
		{"quantidade zero", stock.WithdrawInput{UserID: "u", ProductCode: "x", Quantity: 0, ClientName: "c"}},
		{"quantidade negativa", stock.WithdrawInput{UserID: "u", ProductCode: "x", Quantity: -5, ClientName: "c"}},
		{"valor negativo", stock.WithdrawInput{
			UserID: "u", ProductCode: "x", Quantity: 1, ClientName: "c",
			SaleValue: decimal.NewFromInt(-1),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Withdraw(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, movementRepo.movements)
}

// O snapshot do nome congela o histórico: renomear o produto depois da saída
// não altera o registro já gravado.
func TestWithdraw_SnapshotDoNomeSobreviveARenomeacao(t *testing.T) {
	uc, productRepo, movementRepo := newFixture()
	p := seedProduct(productRepo, "user-1", "prod-1", "8421.23.00", "Filtro de óleo", 10)

	require.NoError(t, uc.Withdraw(context.Background(), stock.WithdrawInput{
		UserID:      "user-1",
		ProductCode: "8421.23.00",
		Quantity:    1,
		ClientName:  "Cliente",
	}))

	p.Name = "Filtro de óleo premium"

	require.Len(t, movementRepo.movements, 1)
	assert.Equal(t, "Filtro de óleo", movementRepo.movements[0].ProductName)
}
