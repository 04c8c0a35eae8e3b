package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// SearchableText devuelve la forma textual de cada columna buscable del registro
// (texto tal cual, números con la escala con la que se guardaron, fechas YYYY-MM-DD).
// Los valores ausentes no aparecen.
func SearchableText(r *entity.StockRecord) []string {
	out := make([]string, 0, 18)
	add := func(s string) {
		if s != "" {
			out = append(out, s)
		}
	}
	add(r.ItemCode)
	add(r.ItemDescription)
	add(r.InwardInvoiceNo)
	if r.InwardDate != nil {
		add(r.InwardDate.Format(entity.DateLayout))
	}
	add(r.UOM)
	add(numericText(r.InwardQty))
	add(numericText(r.InwardUnitPrice))
	add(numericText(r.InwardTotalPrice))
	add(numericText(r.OutwardQty))
	add(numericText(r.BalanceStockQty))
	add(r.AlarmStatus)
	add(r.OutwardInvoiceNo)
	if r.OutwardDate != nil {
		add(r.OutwardDate.Format(entity.DateLayout))
	}
	add(numericText(r.OutwardUnitPrice))
	add(numericText(r.OutwardTotalPrice))
	add(r.EwayBillNumber)
	add(r.VehicleNumber)
	add(r.PONumber)
	return out
}

// numericText imita CAST(numeric AS TEXT): conserva los ceros de la escala (5480.40, no 5480.4).
func numericText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// MatchesSearch indica si algún campo contiene term, sin distinguir mayúsculas.
func MatchesSearch(r *entity.StockRecord, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, s := range SearchableText(r) {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
