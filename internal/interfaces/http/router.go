package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stock-api/internal/application/analytics"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/report"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *inventory.StockRecordUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ExportUC    *report.ExportUseCase
	Log         *logger.Logger
	AppName     string
	MaxPageSize int
}

// Router registra las páginas y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	pages := NewPageHandler(deps.AppName)
	app.Get("/", pages.Dashboard)
	app.Get("/inventory", pages.Inventory)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log.Named("dashboard"))
	api.Get("/dashboard-metrics", dashboardHandler.GetMetrics)

	stockHandler := NewStockHandler(deps.StockUC, log.Named("inventory"), deps.MaxPageSize)
	api.Get("/inventory", stockHandler.List)
	api.Get("/item/:id", stockHandler.GetByID)
	api.Post("/add", stockHandler.Add)
	api.Put("/update/:id", stockHandler.Update)
	api.Patch("/update/:id", stockHandler.Update)
	api.Delete("/delete/:id", stockHandler.Delete)

	// Exportaciones (sin paginar; mismos filtros que /api/inventory)
	if deps.ExportUC != nil {
		exportHandler := NewExportHandler(deps.ExportUC, log.Named("export"))
		api.Get("/export/inventory.xlsx", exportHandler.InventoryXLSX)
		api.Get("/export/low-stock.pdf", exportHandler.LowStockPDF)
	}
}
