package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/lunchcontrol-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las métricas del día, los productos destacados y las series de los gráficos.
// GET /api/dashboard/summary
//
// No requiere parámetros; el día calendario se calcula en el servidor con APP_TIMEZONE.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
