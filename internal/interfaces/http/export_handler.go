package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/report"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// ExportHandler descargas XLSX/PDF del inventario.
type ExportHandler struct {
	uc  *report.ExportUseCase
	log *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ExportUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// InventoryXLSX godoc
// @Summary      Exportar inventario a XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "normal | low | critical"
// @Param        search  query  string  false  "Texto a buscar"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/inventory.xlsx [get]
func (h *ExportHandler) InventoryXLSX(c *fiber.Ctx) error {
	out, err := h.uc.InventoryWorkbook(c.UserContext(), c.Query("status"), c.Query("search"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendExport(c, out)
}

// LowStockPDF godoc
// @Summary      Informe PDF de stock bajo
// @Description  Registros en Critical o Low Stock (estado recalculado).
// @Tags         export
// @Produce      application/pdf
// @Param        status  query  string  false  "normal | low | critical"
// @Param        search  query  string  false  "Texto a buscar"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/low-stock.pdf [get]
func (h *ExportHandler) LowStockPDF(c *fiber.Ctx) error {
	out, err := h.uc.LowStockPDF(c.UserContext(), c.Query("status"), c.Query("search"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendExport(c, out)
}

func sendExport(c *fiber.Ctx, out *report.Export) error {
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Data)
}
