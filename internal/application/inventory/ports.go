package inventory

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando un repositorio atado a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso (nada queda aplicado a medias).
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.StockRecordRepository) error) error
}
