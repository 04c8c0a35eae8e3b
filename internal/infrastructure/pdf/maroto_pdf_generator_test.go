package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/report"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
)

func TestGenerateStockReportPDF(t *testing.T) {
	recs := []*entity.StockRecord{
		{ItemCode: "ITM00001", ItemDescription: "Widget A1", InwardQty: decimal.NewFromInt(100), OutwardQty: decimal.NewFromInt(90)},
		{ItemCode: "ITM00002", InwardQty: decimal.NewFromInt(100), OutwardQty: decimal.NewFromInt(30)},
	}
	for _, r := range recs {
		domaininv.ComputeDerived(r)
	}
	g := NewMarotoPDFGenerator("tests")

	out, err := g.GenerateStockReportPDF(context.Background(), report.StockReport{
		Title:       "Informe de stock bajo",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Records:     recs,
		Summary:     domaininv.Summarize(recs),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateStockReportPDF_SinRegistros(t *testing.T) {
	out, err := NewMarotoPDFGenerator("").GenerateStockReportPDF(context.Background(), report.StockReport{Title: "Vacío"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateStockReportPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPDFGenerator("").GenerateStockReportPDF(ctx, report.StockReport{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0.00":     "0.00",
		"999":      "999",
		"25000.50": "25,000.50",
		"1000000":  "1,000,000",
		"-1234.5":  "-1,234.5",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}
