package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stock-api/internal/application/analytics"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetMetrics godoc
// @Summary      Métricas del dashboard
// @Description  Contadores por alarm_status y valor total de entradas sobre todos los registros.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard-metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	out, err := h.uc.GetMetrics(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
