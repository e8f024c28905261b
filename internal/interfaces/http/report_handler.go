package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kishanbeldas/pahana-edu/internal/application/reports"
)

// ReportHandler expone el reporte de ventas y el tablero.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas por rango de fechas (por defecto, el mes en curso)
// @Tags         reports
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD, inclusive"
// @Param        endDate    query  string  false  "YYYY-MM-DD, inclusive"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.UserContext(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Conteos generales del tablero
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard(c.UserContext()))
}
