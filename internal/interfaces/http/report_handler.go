package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/estoque-pro/internal/application/catalog"
	"github.com/seu-usuario/estoque-pro/internal/application/dto"
	"github.com/seu-usuario/estoque-pro/internal/application/report"
	"github.com/seu-usuario/estoque-pro/internal/domain"
	"github.com/seu-usuario/estoque-pro/internal/domain/entity"
)

// requestDateLayout formato das datas vindas dos formulários (input type=date).
const requestDateLayout = "2006-01-02"

// ReportHandler gerencia relatórios de estoque e exportação em PDF (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Relatorios godoc
// @Summary      Relatório de entradas, saídas e produtos zerados
// @Tags         relatorios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportRequest  true  "startDate, endDate (aaaa-mm-dd)"
// @Success      200   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/relatorios [post]
func (h *ReportHandler) Relatorios(c *fiber.Ctx) error {
	userID := GetUserID(c)
	start, end, ok := parsePeriod(c)
	if !ok {
		return nil
	}
	rep, err := h.uc.Generate(c.Context(), userID, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao carregar relatórios."})
	}
	return c.JSON(toReportResponse(rep))
}

// ExportarPDF godoc
// @Summary      Exportar relatório do período em PDF
// @Tags         relatorios
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReportRequest  true  "startDate, endDate (aaaa-mm-dd)"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/exportar-relatorios-pdf [post]
func (h *ReportHandler) ExportarPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)
	start, end, ok := parsePeriod(c)
	if !ok {
		return nil
	}
	pdfBytes, err := h.uc.ExportPDF(c.Context(), userID, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao gerar o PDF."})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorios.pdf"`)
	return c.Send(pdfBytes)
}

// parsePeriod lê e valida startDate/endDate do corpo. Quando o corpo é inválido,
// escreve a resposta 400 e devolve ok=false; o handler deve retornar sem fazer
// mais nada. O valor de retorno de c.JSON não serve como sentinela: é nil
// sempre que a serialização funciona.
func parsePeriod(c *fiber.Ctx) (start, end time.Time, ok bool) {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		return time.Time{}, time.Time{}, false
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate e endDate são obrigatórios"})
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(requestDateLayout, in.StartDate)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate inválida (aaaa-mm-dd)"})
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(requestDateLayout, in.EndDate)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate inválida (aaaa-mm-dd)"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func toReportResponse(rep *report.Report) dto.ReportResponse {
	out := dto.ReportResponse{
		Entries:    make([]dto.ProductResponse, 0, len(rep.Entries)),
		Exits:      make([]dto.MovementResponse, 0, len(rep.Exits)),
		OutOfStock: make([]dto.ProductResponse, 0, len(rep.OutOfStock)),
	}
	for _, p := range rep.Entries {
		out.Entries = append(out.Entries, *catalog.ToProductResponse(p))
	}
	for _, s := range rep.Exits {
		out.Exits = append(out.Exits, toMovementResponse(s))
	}
	for _, p := range rep.OutOfStock {
		out.OutOfStock = append(out.OutOfStock, *catalog.ToProductResponse(p))
	}
	return out
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		ClientName:  m.ClientName,
		SaleValue:   m.SaleValue,
		Date:        m.Date.Format("02/01/2006"),
	}
}
