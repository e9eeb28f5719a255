package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-pro/internal/application/report"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	apphttp "github.com/seu-usuario/estoque-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs e helpers
// ──────────────────────────────────────────────────────────────────────────────

// emptyProductRepo catálogo vazio: qualquer consulta devolve listas vazias.
type emptyProductRepo struct{}

func (r *emptyProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *emptyProductRepo) GetByID(context.Context, string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *emptyProductRepo) GetByCode(context.Context, string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *emptyProductRepo) GetByCodeForUpdate(context.Context, string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *emptyProductRepo) ListByUser(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *emptyProductRepo) ListEntriesByPeriod(context.Context, string, time.Time, time.Time) ([]*entity.Product, error) {
	return nil, nil
}
func (r *emptyProductRepo) ListOutOfStock(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}
func (r *emptyProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *emptyProductRepo) UpdateQuantity(context.Context, string, string, int) error {
	return nil
}
func (r *emptyProductRepo) Delete(context.Context, string, string) error { return nil }

type emptyMovementRepo struct{}

func (r *emptyMovementRepo) Create(context.Context, *entity.StockMovement) error { return nil }
func (r *emptyMovementRepo) ListByPeriod(context.Context, string, time.Time, time.Time) ([]*entity.StockMovement, error) {
	return nil, nil
}

type fixedPDFGenerator struct{}

func (g *fixedPDFGenerator) GenerateReportPDF(context.Context, *report.Report) ([]byte, error) {
	return []byte("%PDF-1.4 relatorio"), nil
}

// newReportTestApp monta a app com as rotas de relatório e um local de
// identidade fixo no lugar do middleware de auth.
func newReportTestApp() *fiber.App {
	uc := report.NewReportUseCase(&emptyProductRepo{}, &emptyMovementRepo{}, &fixedPDFGenerator{})
	h := apphttp.NewReportHandler(uc)

	app := fiber.New()
	identified := func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, "user-1")
		return c.Next()
	}
	app.Post("/relatorios", identified, h.Relatorios)
	app.Post("/exportar-relatorios-pdf", identified, h.ExportarPDF)
	return app
}

// postJSON lança um POST com o corpo informado e devolve status e corpo da resposta.
func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string, http.Header) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw), resp.Header
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Relatorios / ExportarPDF
// ──────────────────────────────────────────────────────────────────────────────

// Data que não parseia: 400 com a mensagem de validação, nunca o relatório
// calculado sobre datas zero.
func TestRelatorios_DataInvalidaDevolveErroLegivel(t *testing.T) {
	app := newReportTestApp()

	status, body, _ := postJSON(t, app, "/relatorios",
		`{"startDate":"not-a-date","endDate":"2026-08-31"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "startDate", "a resposta deve apontar o campo inválido")
	assert.NotContains(t, body, "entries", "o corpo de erro não pode ser o relatório")

	status, body, _ = postJSON(t, app, "/relatorios",
		`{"startDate":"2026-08-01","endDate":"31/08/2026"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "endDate")
}

// Campos ausentes ou corpo que não é JSON: 400 com código de validação.
func TestRelatorios_CorpoInvalido(t *testing.T) {
	app := newReportTestApp()

	status, body, _ := postJSON(t, app, "/relatorios", `{"startDate":"2026-08-01"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "VALIDATION")

	status, body, _ = postJSON(t, app, "/relatorios", `{nao-e-json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "INVALID_BODY")
}

// Período válido: 200 com as três listas (vazias neste catálogo).
func TestRelatorios_PeriodoValido(t *testing.T) {
	app := newReportTestApp()

	status, body, _ := postJSON(t, app, "/relatorios",
		`{"startDate":"2026-08-01","endDate":"2026-08-31"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"entries":[],"exits":[],"outOfStock":[]}`, body)
}

// Exportação com data inválida: 400 JSON, sem bytes de PDF nem header de anexo.
func TestExportarPDF_DataInvalidaNaoGeraPDF(t *testing.T) {
	app := newReportTestApp()

	status, body, headers := postJSON(t, app, "/exportar-relatorios-pdf",
		`{"startDate":"not-a-date","endDate":"2026-08-31"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "startDate")
	assert.NotContains(t, body, "%PDF")
	assert.NotEqual(t, "application/pdf", headers.Get(fiber.HeaderContentType))
	assert.Empty(t, headers.Get(fiber.HeaderContentDisposition))
}

// Exportação válida: 200 com PDF e headers de download.
func TestExportarPDF_PeriodoValido(t *testing.T) {
	app := newReportTestApp()

	status, body, headers := postJSON(t, app, "/exportar-relatorios-pdf",
		`{"startDate":"2026-08-01","endDate":"2026-08-31"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, "%PDF"))
	assert.Equal(t, "application/pdf", headers.Get(fiber.HeaderContentType))
	assert.Contains(t, headers.Get(fiber.HeaderContentDisposition), "relatorios.pdf")
}
