package report

import (
	"context"
	"time"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
)

// StockReport datos que reciben los generadores. Los registros ya traen los derivados recalculados.
type StockReport struct {
	Title       string
	GeneratedAt time.Time
	Records     []*entity.StockRecord
	Summary     domaininv.Tally
}

// PDFGenerator genera el informe PDF de stock bajo.
type PDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, r StockReport) ([]byte, error)
}

// WorkbookGenerator genera el libro XLSX del inventario.
type WorkbookGenerator interface {
	GenerateInventoryWorkbook(ctx context.Context, r StockReport) ([]byte, error)
}
