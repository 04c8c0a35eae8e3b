package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Tally resumen de todos los registros para el dashboard.
type Tally struct {
	TotalItems    int
	NormalStock   int
	LowStock      int
	CriticalStock int
	TotalValue    decimal.Decimal // suma de inward_total_price, redondeada a 2 decimales
}

// Summarize recorre los registros y cuenta por alarm_status persistido.
//
// La comparación ignora mayúsculas y espacios ("low stock", "critical"); cualquier otro valor,
// incluido vacío, cuenta como normal. Es deliberadamente más laxa que ClassifyAlarm y no la usa.
func Summarize(records []*entity.StockRecord) Tally {
	fold := cases.Fold()
	lowKey := fold.String(entity.AlarmLowStock)
	criticalKey := fold.String(entity.AlarmCritical)

	var t Tally
	total := decimal.Zero
	for _, r := range records {
		t.TotalItems++
		total = total.Add(r.InwardTotalPrice)

		switch fold.String(strings.TrimSpace(r.AlarmStatus)) {
		case lowKey:
			t.LowStock++
		case criticalKey:
			t.CriticalStock++
		default:
			t.NormalStock++
		}
	}
	t.TotalValue = total.Round(2)
	return t
}
