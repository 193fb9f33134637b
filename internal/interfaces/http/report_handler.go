package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/lunchcontrol-api/internal/application/analytics"
)

// ReportHandler reportes y exportaciones (permiso "reports").
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Report godoc
// @Summary      Generar reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "sales | products | orders | customers"  default(sales)
// @Param        period  query  string  false  "today | week | month | all"              default(today)
// @Success      200     {object}  dto.ReportDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.Context(), c.Query("type", appanalytics.ReportSales), c.Query("period", appanalytics.PeriodToday))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte
// @Description  Usa todos los pedidos; el período solo aparece en el nombre del archivo.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv,application/pdf,application/xml
// @Param        type    query  string  false  "sales | products | orders | customers"  default(sales)
// @Param        period  query  string  false  "today | week | month | all"              default(today)
// @Param        format  query  string  false  "csv | pdf | xml"                         default(csv)
// @Success      200
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(c.Context(),
		c.Query("type", appanalytics.ReportSales),
		c.Query("period", appanalytics.PeriodToday),
		c.Query("format", "csv"),
	)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}
