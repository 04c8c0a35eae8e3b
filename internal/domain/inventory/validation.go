package inventory

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Longitudes máximas de las columnas de texto de stock_items.
const (
	MaxItemCodeLen    = 50
	MaxDescriptionLen = 255
	MaxUOMLen         = 10
	MaxReferenceLen   = 100
	MaxVehicleLen     = 50
)

// Validate comprueba las reglas del registro antes de persistir.
func Validate(r *entity.StockRecord) error {
	if strings.TrimSpace(r.ItemCode) == "" {
		return fmt.Errorf("%w: item_code es requerido", domain.ErrInvalidInput)
	}
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"item_code", r.ItemCode, MaxItemCodeLen},
		{"item_description", r.ItemDescription, MaxDescriptionLen},
		{"uom", r.UOM, MaxUOMLen},
		{"inward_invoice_no", r.InwardInvoiceNo, MaxReferenceLen},
		{"outward_invoice_no", r.OutwardInvoiceNo, MaxReferenceLen},
		{"eway_bill_number", r.EwayBillNumber, MaxReferenceLen},
		{"vehicle_number", r.VehicleNumber, MaxVehicleLen},
		{"po_number", r.PONumber, MaxReferenceLen},
	}
	for _, c := range checks {
		if utf8.RuneCountInString(c.value) > c.max {
			return fmt.Errorf("%w: %s excede %d caracteres", domain.ErrInvalidInput, c.field, c.max)
		}
	}
	quantities := []struct {
		field string
		value decimal.Decimal
	}{
		{"inward_qty", r.InwardQty},
		{"inward_unit_price", r.InwardUnitPrice},
		{"outward_qty", r.OutwardQty},
		{"outward_unit_price", r.OutwardUnitPrice},
	}
	for _, q := range quantities {
		if q.value.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, q.field)
		}
	}
	return nil
}
