package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de alarma de un registro según su saldo.
const (
	AlarmCritical = "Critical"
	AlarmLowStock = "Low Stock"
	AlarmNormal   = "Normal"
)

// DateLayout formato de las fechas de entrada/salida en la API y en la búsqueda textual.
const DateLayout = "2006-01-02"

// StockRecord representa un movimiento de stock: una entrada (inward) emparejada con su salida (outward).
// InwardTotalPrice, OutwardTotalPrice, BalanceStockQty y AlarmStatus son derivados y se recalculan
// en el servidor antes de persistir y antes de serializar.
type StockRecord struct {
	ID              int64
	ItemCode        string // único en la tabla
	ItemDescription string
	UOM             string

	InwardInvoiceNo  string
	OutwardInvoiceNo string
	EwayBillNumber   string
	VehicleNumber    string
	PONumber         string

	InwardDate  *time.Time
	OutwardDate *time.Time

	InwardQty        decimal.Decimal
	InwardUnitPrice  decimal.Decimal
	InwardTotalPrice decimal.Decimal

	OutwardQty        decimal.Decimal
	OutwardUnitPrice  decimal.Decimal
	OutwardTotalPrice decimal.Decimal

	BalanceStockQty decimal.Decimal
	AlarmStatus     string
}

// Clone devuelve una copia independiente del registro.
func (r *StockRecord) Clone() *StockRecord {
	if r == nil {
		return nil
	}
	c := *r
	if r.InwardDate != nil {
		d := *r.InwardDate
		c.InwardDate = &d
	}
	if r.OutwardDate != nil {
		d := *r.OutwardDate
		c.OutwardDate = &d
	}
	return &c
}
