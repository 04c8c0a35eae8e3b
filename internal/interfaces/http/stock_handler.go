package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// StockHandler maneja las peticiones HTTP de registros de stock.
type StockHandler struct {
	uc          *inventory.StockRecordUseCase
	log         *logger.Logger
	maxPageSize int
}

// NewStockHandler construye el handler. maxPageSize recorta el parámetro limit (0 = sin tope).
func NewStockHandler(uc *inventory.StockRecordUseCase, log *logger.Logger, maxPageSize int) *StockHandler {
	return &StockHandler{uc: uc, log: log, maxPageSize: maxPageSize}
}

// List godoc
// @Summary      Listar registros de stock
// @Tags         inventory
// @Produce      json
// @Param        page    query  int     false  "Página (1-indexada)"  default(1)
// @Param        limit   query  int     false  "Tamaño de página"     default(50)
// @Param        status  query  string  false  "normal | low | critical"
// @Param        search  query  string  false  "Texto a buscar en todas las columnas"
// @Success      200     {object}  dto.StockRecordListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	q := dto.InventoryQuery{
		PageRequest: dto.PageRequest{
			Page:  c.QueryInt("page", dto.DefaultPage),
			Limit: c.QueryInt("limit", dto.DefaultLimit),
		},
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	q.DefaultPage(h.maxPageSize)
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, h.log, domain.ErrNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Crear uno o varios registros
// @Description  Acepta un objeto (un registro) o un array (lote todo-o-nada).
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRecordRequest  true  "Registro o array de registros"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/add [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || !json.Valid(body) {
		return invalidBody(c, "el cuerpo no es JSON válido")
	}

	switch body[0] {
	case '[':
		var items []dto.CreateStockRecordRequest
		if err := json.Unmarshal(body, &items); err != nil {
			return respondError(c, h.log, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		}
		n, err := h.uc.CreateBatch(c.UserContext(), items)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
			Message: fmt.Sprintf("%d items added successfully", n),
		})
	case '{':
		var in dto.CreateStockRecordRequest
		if err := json.Unmarshal(body, &in); err != nil {
			return respondError(c, h.log, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		}
		out, err := h.uc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
			Message: "Item added successfully",
			Item:    out,
		})
	default:
		return invalidBody(c, "se esperaba un objeto o un array")
	}
}

// Update godoc
// @Summary      Actualizar registro (parcial)
// @Description  Solo se modifican los campos presentes; null limpia el campo. Los derivados se recalculan.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.UpdateStockRecordRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/update/{id} [put]
// @Router       /api/update/{id} [patch]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, h.log, domain.ErrNotFound)
	}
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || !json.Valid(body) {
		return invalidBody(c, "el cuerpo no es JSON válido")
	}
	if body[0] != '{' {
		return invalidBody(c, "se esperaba un objeto")
	}
	var in dto.UpdateStockRecordRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return respondError(c, h.log, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Item '%s' updated successfully", out.ItemCode),
		Item:    out,
	})
}

// Delete godoc
// @Summary      Borrar registro
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delete/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, h.log, domain.ErrNotFound)
	}
	itemCode, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Item '%s' deleted successfully", itemCode)})
}

// parseID lee :id como entero; un id no numérico no puede existir.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
