package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/stocktrackr/stocktrackr-api/internal/application/analytics"
	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del dashboard recalculado desde cero.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (stock_levels, low_stock, daily_sales,
// monthly_income). No recibe parámetros; "hoy" y el mes en curso se calculan
// en el servidor con la zona horaria configurada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "DATA_UNAVAILABLE", Message: "no se pudieron cargar los datos; reintente",
			})
		}
		if errors.Is(err, domain.ErrInvalidRecord) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "INVALID_RECORD", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
