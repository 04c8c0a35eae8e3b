// Package excel exporta el inventario a XLSX con excelize.
package excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-api/internal/application/report"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Nombres de las hojas del libro.
const (
	SheetInventory = "Inventory"
	SheetSummary   = "Summary"
)

// inventoryHeader usa los nombres de campo del JSON del API.
var inventoryHeader = []interface{}{
	"id", "item_code", "item_description", "uom",
	"inward_date", "inward_invoice_no", "inward_qty", "inward_unit_price", "inward_total_price",
	"outward_date", "outward_invoice_no", "outward_qty", "outward_unit_price", "outward_total_price",
	"eway_bill_number", "vehicle_number", "po_number",
	"balance_stock_qty", "alarm_status",
}

// WorkbookGenerator implementa report.WorkbookGenerator.
type WorkbookGenerator struct{}

// NewWorkbookGenerator construye el generador.
func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

var _ report.WorkbookGenerator = (*WorkbookGenerator)(nil)

// GenerateInventoryWorkbook escribe una fila por registro en Inventory y los contadores en Summary.
func (g *WorkbookGenerator) GenerateInventoryWorkbook(ctx context.Context, r report.StockReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetInventory); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	if err := f.SetSheetRow(SheetInventory, "A1", &inventoryHeader); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(inventoryHeader))
	if err := f.SetCellStyle(SheetInventory, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	_ = f.SetColWidth(SheetInventory, "A", lastCol, 16)
	_ = f.SetColWidth(SheetInventory, "C", "C", 32)

	for i, rec := range r.Records {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := inventoryRow(rec)
		if err := f.SetSheetRow(SheetInventory, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("excel: hoja resumen: %w", err)
	}
	s := r.Summary
	summary := [][]interface{}{
		{"report", r.Title},
		{"generated_at", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"total_items", s.TotalItems},
		{"normal_stock", s.NormalStock},
		{"low_stock", s.LowStock},
		{"critical_stock", s.CriticalStock},
		{"total_value", s.TotalValue.InexactFloat64()},
	}
	for i, line := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &line); err != nil {
			return nil, fmt.Errorf("excel: resumen: %w", err)
		}
	}
	_ = f.SetColWidth(SheetSummary, "A", "A", 18)
	_ = f.SetColWidth(SheetSummary, "B", "B", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func inventoryRow(r *entity.StockRecord) []interface{} {
	return []interface{}{
		r.ID, r.ItemCode, r.ItemDescription, r.UOM,
		formatDate(r.InwardDate), r.InwardInvoiceNo,
		r.InwardQty.InexactFloat64(), r.InwardUnitPrice.InexactFloat64(), r.InwardTotalPrice.InexactFloat64(),
		formatDate(r.OutwardDate), r.OutwardInvoiceNo,
		r.OutwardQty.InexactFloat64(), r.OutwardUnitPrice.InexactFloat64(), r.OutwardTotalPrice.InexactFloat64(),
		r.EwayBillNumber, r.VehicleNumber, r.PONumber,
		r.BalanceStockQty.InexactFloat64(), r.AlarmStatus,
	}
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(entity.DateLayout)
}
