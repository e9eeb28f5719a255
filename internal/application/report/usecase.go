package report

import (
	"context"
	"time"

	"github.com/seu-usuario/estoque-pro/internal/domain"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
	"github.com/seu-usuario/estoque-pro/internal/domain/repository"
)

// Report relatório de estoque de um período: entradas e saídas dentro de
// [Start, End] e produtos zerados independentemente do período.
type Report struct {
	Start      time.Time
	End        time.Time
	Entries    []*entity.Product
	Exits      []*entity.StockMovement
	OutOfStock []*entity.Product
}

// PDFGenerator porto de renderização do relatório em documento paginado.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *Report) ([]byte, error)
}

// ReportUseCase agrega entradas, saídas e produtos zerados de um usuário.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	pdfGenerator PDFGenerator
}

// NewReportUseCase constrói o caso de uso de relatórios.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	pdfGenerator PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		pdfGenerator: pdfGenerator,
	}
}

// Generate consulta as três dimensões do relatório. Período vazio não é erro:
// as listas voltam vazias e a renderização mostra seções sem linhas.
func (uc *ReportUseCase) Generate(ctx context.Context, userID string, start, end time.Time) (*Report, error) {
	if userID == "" || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	entries, err := uc.productRepo.ListEntriesByPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	exits, err := uc.movementRepo.ListByPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	outOfStock, err := uc.productRepo.ListOutOfStock(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Report{
		Start:      start,
		End:        end,
		Entries:    entries,
		Exits:      exits,
		OutOfStock: outOfStock,
	}, nil
}

// ExportPDF agrega o período e renderiza o documento (bytes prontos para download).
func (uc *ReportUseCase) ExportPDF(ctx context.Context, userID string, start, end time.Time) ([]byte, error) {
	rep, err := uc.Generate(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateReportPDF(ctx, rep)
}
