package http

import "github.com/gofiber/fiber/v2"

// PageHandler sirve las dos páginas HTML; los datos los piden al API desde el navegador.
type PageHandler struct {
	appName string
}

// NewPageHandler construye el handler.
func NewPageHandler(appName string) *PageHandler {
	return &PageHandler{appName: appName}
}

// Dashboard GET /
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{"Title": "Dashboard", "AppName": h.appName})
}

// Inventory GET /inventory
func (h *PageHandler) Inventory(c *fiber.Ctx) error {
	return c.Render("inventory", fiber.Map{"Title": "Inventory", "AppName": h.appName})
}
