package dto

import "math"

// Valores por defecto del listado paginado.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// PageRequest paginación 1-indexada para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto si Page/Limit no son válidos y recorta Limit a maxLimit (>0).
func (p *PageRequest) DefaultPage(maxLimit int) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Offset desplazamiento SQL de la página. Satura en math.MaxInt si (Page-1)*Limit desborda.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ErrorResponse cuerpo de error HTTP. Detail lleva el texto del error interno en los 500.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse respuesta de las operaciones de escritura.
type MessageResponse struct {
	Message string               `json:"message"`
	Item    *StockRecordResponse `json:"item,omitempty"`
}
