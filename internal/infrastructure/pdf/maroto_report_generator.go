// Package pdf implementa a geração do relatório de estoque em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│        Relatórios de Estoque: dd/mm/aaaa a dd/mm/aaaa        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Entradas                                                    │
//	│  Nome: .. | Quantidade: .. | Preço: R$ .. | Código: .. | Data│
//	│  ─────────────────────────────────────────────────────────  │
//	│  Saídas                                                      │
//	│  Nome: .. | Quantidade: .. | Cliente: .. | Valor: R$ .. |Data│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/seu-usuario/estoque-pro/internal/application/report"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
)

// dateLayout formato fixo de data no documento (pt-BR).
const dateLayout = "02/01/2006"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	// Impressora pt-BR: separador decimal vírgula, milhar com ponto.
	ptBR = message.NewPrinter(language.BrazilianPortuguese)
)

// Ensure MarotoReportGenerator implements report.PDFGenerator.
var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF gera o PDF do relatório e devolve seus bytes.
// Seções sem registros ficam vazias: período sem movimento não é erro.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, rep *report.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Relatórios de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(rep))
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionHeaderRow("Entradas"))
	for _, p := range rep.Entries {
		m.AddRows(entryRow(p))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionHeaderRow("Saídas"))
	for _, s := range rep.Exits {
		m.AddRows(exitRow(s))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: título centralizado com o período localizado.
func titleRow(rep *report.Report) core.Row {
	title := fmt.Sprintf("Relatórios de Estoque: %s a %s",
		rep.Start.Format(dateLayout), rep.End.Format(dateLayout))
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// sectionHeaderRow: cabeçalho de seção (Entradas / Saídas).
func sectionHeaderRow(label string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// entryRow: uma linha por produto que entrou no período.
func entryRow(p *entity.Product) core.Row {
	l := fmt.Sprintf("Nome: %s | Quantidade: %d | Preço: %s | Código: %s | Data: %s",
		p.Name, p.Quantity, formatMoney(p.Price), p.Code, p.EntryDate.Format(dateLayout))
	return row.New(6).Add(
		col.New(12).Add(
			text.New(l, props.Text{Size: 9, Color: colorGray, Top: 1}),
		),
	)
}

// exitRow: uma linha por saída registrada no período.
func exitRow(s *entity.StockMovement) core.Row {
	l := fmt.Sprintf("Nome: %s | Quantidade: %d | Cliente: %s | Valor: %s | Data: %s",
		s.ProductName, s.Quantity, s.ClientName, formatMoney(s.SaleValue), s.Date.Format(dateLayout))
	return row.New(6).Add(
		col.New(12).Add(
			text.New(l, props.Text{Size: 9, Color: colorGray, Top: 1}),
		),
	)
}

// formatMoney formata um valor monetário em pt-BR: R$ 1.234,56.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}
