package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// StockRecordFilter criterios del listado. AlarmStatus es el valor exacto persistido ("" = todos);
// Search es un término libre que se compara contra la forma textual de cada columna.
// Limit/Offset solo aplican a List.
type StockRecordFilter struct {
	AlarmStatus string
	Search      string
	Limit       int
	Offset      int
}

// StockRecordRepository define el puerto de persistencia para StockRecord (DIP).
// Cada implementación se construye sobre un handle explícito (pool o transacción).
type StockRecordRepository interface {
	// Create inserta el registro y asigna ID. item_code repetido devuelve domain.ErrDuplicate.
	Create(ctx context.Context, record *entity.StockRecord) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.StockRecord, error)
	// Update reemplaza todas las columnas. domain.ErrNotFound si no existe, domain.ErrDuplicate si choca el item_code.
	Update(ctx context.Context, record *entity.StockRecord) error
	// Delete borra físicamente. domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
	// List devuelve la página pedida (orden id DESC) y el total tras filtrar y antes de paginar.
	List(ctx context.Context, filter StockRecordFilter) ([]*entity.StockRecord, int, error)
	// ListAll devuelve todos los registros que cumplen el filtro, sin paginar (orden id DESC).
	ListAll(ctx context.Context, filter StockRecordFilter) ([]*entity.StockRecord, error)
}
