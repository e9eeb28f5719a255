package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-pro/internal/application/auth"
	"github.com/seu-usuario/estoque-pro/internal/application/catalog"
	"github.com/seu-usuario/estoque-pro/internal/application/report"
	"github.com/seu-usuario/estoque-pro/internal/application/stock"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *catalog.CatalogUseCase
	WithdrawUC *stock.WithdrawUseCase
	ReportUC   *report.ReportUseCase
	JWTSecret  string
}

// Router registra as rotas da API. Os caminhos mantêm os nomes das páginas
// originais do app (cadastro-produto, saida-peca, relatorios).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/cadastro", authHandler.Cadastro)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de produtos
	productHandler := NewProductHandler(deps.CatalogUC)
	protected.Get("/estoque", productHandler.Estoque)
	protected.Post("/cadastro-produto", productHandler.Cadastrar)
	protected.Get("/buscar-produto", productHandler.Buscar)
	protected.Put("/editar-produto/:id", productHandler.Editar)
	protected.Delete("/excluir-produto/:id", productHandler.Excluir)

	// Saída de estoque
	stockHandler := NewStockHandler(deps.WithdrawUC)
	protected.Post("/saida-peca", stockHandler.SaidaPeca)

	// Relatórios
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Post("/relatorios", reportHandler.Relatorios)
	protected.Post("/exportar-relatorios-pdf", reportHandler.ExportarPDF)
}
