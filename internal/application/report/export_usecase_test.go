package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/infrastructure/memory"
)

type captureGenerator struct {
	got StockReport
	err error
}

func (g *captureGenerator) GenerateStockReportPDF(_ context.Context, r StockReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), g.err
}

func (g *captureGenerator) GenerateInventoryWorkbook(_ context.Context, r StockReport) ([]byte, error) {
	g.got = r
	return []byte("xlsx"), g.err
}

func seed(t *testing.T, s *memory.Store, code string, inward, outward int64) {
	t.Helper()
	r := &entity.StockRecord{ItemCode: code, InwardQty: decimal.NewFromInt(inward), OutwardQty: decimal.NewFromInt(outward)}
	domaininv.ComputeDerived(r)
	require.NoError(t, s.Create(context.Background(), r))
}

func newTestExport(t *testing.T) (*ExportUseCase, *captureGenerator) {
	s := memory.New()
	seed(t, s, "N1", 100, 0)  // Normal
	seed(t, s, "L1", 100, 30) // Low Stock
	seed(t, s, "C1", 100, 90) // Critical
	g := &captureGenerator{}
	uc := NewExportUseCase(s, g, g)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	return uc, g
}

func TestInventoryWorkbook_TodosLosRegistros(t *testing.T) {
	uc, g := newTestExport(t)

	out, err := uc.InventoryWorkbook(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "inventory-20240301-093000.xlsx", out.Filename)
	assert.Equal(t, ContentTypeXLSX, out.ContentType)
	assert.Len(t, g.got.Records, 3)
	assert.Equal(t, 3, g.got.Summary.TotalItems)
}

func TestInventoryWorkbook_FiltroPorEstado(t *testing.T) {
	uc, g := newTestExport(t)

	_, err := uc.InventoryWorkbook(context.Background(), "critical", "")
	require.NoError(t, err)

	require.Len(t, g.got.Records, 1)
	assert.Equal(t, "C1", g.got.Records[0].ItemCode)
}

func TestInventoryWorkbook_EstadoInvalido(t *testing.T) {
	uc, _ := newTestExport(t)

	_, err := uc.InventoryWorkbook(context.Background(), "urgent", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStockPDF_SoloAlarmas(t *testing.T) {
	uc, g := newTestExport(t)

	out, err := uc.LowStockPDF(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, ContentTypePDF, out.ContentType)
	assert.Equal(t, "low-stock-20240301-093000.pdf", out.Filename)
	require.Len(t, g.got.Records, 2)
	for _, r := range g.got.Records {
		assert.NotEqual(t, entity.AlarmNormal, r.AlarmStatus)
	}
	assert.Equal(t, 1, g.got.Summary.CriticalStock)
	assert.Equal(t, 1, g.got.Summary.LowStock)
}

func TestLowStockPDF_ErrorDelGenerador(t *testing.T) {
	uc, g := newTestExport(t)
	g.err = errors.New("sin fuentes")

	_, err := uc.LowStockPDF(context.Background(), "", "")
	assert.ErrorContains(t, err, "sin fuentes")
}
