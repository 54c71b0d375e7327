package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/stocktrackr/stocktrackr-api/internal/application/analytics"
	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
)

// IncomePDFGenerator genera el PDF del reporte de ingresos.
type IncomePDFGenerator interface {
	Generate(ctx context.Context, report *dto.IncomeReportDTO, issuedAt time.Time) ([]byte, error)
}

// ReportHandler maneja los endpoints de reportes de ingresos (protegido).
type ReportHandler struct {
	uc  *appanalytics.IncomeUseCase
	pdf IncomePDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.IncomeUseCase, pdf IncomePDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// GetIncome godoc
// @Summary      Reporte de ingresos por ventana de tiempo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        window  query  string  false  "7d | month | all (vacío = all)"
// @Success      200  {object}  dto.IncomeReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/income [get]
func (h *ReportHandler) GetIncome(c *fiber.Ctx) error {
	report, err := h.report(c)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(report)
}

// GetIncomePDF godoc
// @Summary      Reporte de ingresos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        window  query  string  false  "7d | month | all (vacío = all)"
// @Success      200  {string}  string  "archivo PDF"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/income.pdf [get]
func (h *ReportHandler) GetIncomePDF(c *fiber.Ctx) error {
	report, err := h.report(c)
	if err != nil {
		return h.mapError(c, err)
	}
	now := time.Now()
	bytes, err := h.pdf.Generate(c.Context(), report, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	filename := fmt.Sprintf("ingresos_%s_%s.pdf", report.Window, now.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(bytes)
}

func (h *ReportHandler) report(c *fiber.Ctx) (*dto.IncomeReportDTO, error) {
	var in dto.IncomeReportRequest
	if err := c.QueryParser(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return h.uc.GetReport(c.Context(), in.Window, time.Now())
}

func (h *ReportHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "window debe ser 7d, month o all"})
	}
	if errors.Is(err, domain.ErrDataUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DATA_UNAVAILABLE", Message: "no se pudieron cargar los datos; reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
