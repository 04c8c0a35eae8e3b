package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateStockRecordRequest entrada para crear un registro (objeto simple o elemento de un lote).
// Los campos derivados no se aceptan: se calculan en el servidor.
// Las cantidades aceptan número o string numérico; ausentes valen 0.
// Los campos de texto aceptan también un número JSON, que se guarda con su texto literal.
type CreateStockRecordRequest struct {
	ItemCode         string          `json:"item_code"`
	ItemDescription  string          `json:"item_description"`
	InwardInvoiceNo  string          `json:"inward_invoice_no"`
	InwardDate       string          `json:"inward_date"` // YYYY-MM-DD
	UOM              string          `json:"uom"`
	InwardQty        decimal.Decimal `json:"inward_qty"`
	InwardUnitPrice  decimal.Decimal `json:"inward_unit_price"`
	OutwardQty       decimal.Decimal `json:"outward_qty"`
	OutwardUnitPrice decimal.Decimal `json:"outward_unit_price"`
	OutwardInvoiceNo string          `json:"outward_invoice_no"`
	OutwardDate      string          `json:"outward_date"` // YYYY-MM-DD
	EwayBillNumber   string          `json:"eway_bill_number"`
	VehicleNumber    string          `json:"vehicle_number"`
	PONumber         string          `json:"po_number"`
}

// UpdateStockRecordRequest actualización parcial: solo se aplican los campos presentes.
// null limpia el campo (texto vacío, fecha NULL, cantidad 0); item_code no admite null ni vacío.
type UpdateStockRecordRequest struct {
	ItemCode         Optional[string]          `json:"item_code"`
	ItemDescription  Optional[string]          `json:"item_description"`
	InwardInvoiceNo  Optional[string]          `json:"inward_invoice_no"`
	InwardDate       Optional[string]          `json:"inward_date"`
	UOM              Optional[string]          `json:"uom"`
	InwardQty        Optional[decimal.Decimal] `json:"inward_qty"`
	InwardUnitPrice  Optional[decimal.Decimal] `json:"inward_unit_price"`
	OutwardQty       Optional[decimal.Decimal] `json:"outward_qty"`
	OutwardUnitPrice Optional[decimal.Decimal] `json:"outward_unit_price"`
	OutwardInvoiceNo Optional[string]          `json:"outward_invoice_no"`
	OutwardDate      Optional[string]          `json:"outward_date"`
	EwayBillNumber   Optional[string]          `json:"eway_bill_number"`
	VehicleNumber    Optional[string]          `json:"vehicle_number"`
	PONumber         Optional[string]          `json:"po_number"`
}

// textFields columnas de texto libre; un número JSON en ellas se toma como texto.
var textFields = []string{
	"item_code",
	"item_description",
	"inward_invoice_no",
	"uom",
	"outward_invoice_no",
	"eway_bill_number",
	"vehicle_number",
	"po_number",
}

// numbersAsText reescribe como string JSON los números que vengan en textFields.
// Devuelve data sin tocar si no hay nada que convertir o si no es un objeto.
func numbersAsText(data []byte) []byte {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return data
	}
	changed := false
	for _, k := range textFields {
		raw := bytes.TrimSpace(m[k])
		if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
			continue
		}
		quoted, err := json.Marshal(string(raw))
		if err != nil {
			return data
		}
		m[k] = quoted
		changed = true
	}
	if !changed {
		return data
	}
	out, err := json.Marshal(m)
	if err != nil {
		return data
	}
	return out
}

// UnmarshalJSON acepta números en los campos de texto.
func (r *CreateStockRecordRequest) UnmarshalJSON(data []byte) error {
	type plain CreateStockRecordRequest
	return json.Unmarshal(numbersAsText(data), (*plain)(r))
}

// UnmarshalJSON acepta números en los campos de texto.
func (r *UpdateStockRecordRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateStockRecordRequest
	return json.Unmarshal(numbersAsText(data), (*plain)(r))
}

// StockRecordResponse salida de un registro con los campos derivados ya recalculados.
// Textos vacíos y fechas ausentes se serializan como null.
type StockRecordResponse struct {
	ID                int64   `json:"id"`
	ItemCode          string  `json:"item_code"`
	ItemDescription   *string `json:"item_description"`
	InwardInvoiceNo   *string `json:"inward_invoice_no"`
	InwardDate        *string `json:"inward_date"`
	UOM               *string `json:"uom"`
	InwardQty         float64 `json:"inward_qty"`
	InwardUnitPrice   float64 `json:"inward_unit_price"`
	InwardTotalPrice  float64 `json:"inward_total_price"`
	OutwardQty        float64 `json:"outward_qty"`
	BalanceStockQty   float64 `json:"balance_stock_qty"`
	AlarmStatus       string  `json:"alarm_status"`
	OutwardInvoiceNo  *string `json:"outward_invoice_no"`
	OutwardDate       *string `json:"outward_date"`
	OutwardUnitPrice  float64 `json:"outward_unit_price"`
	OutwardTotalPrice float64 `json:"outward_total_price"`
	EwayBillNumber    *string `json:"eway_bill_number"`
	VehicleNumber     *string `json:"vehicle_number"`
	PONumber          *string `json:"po_number"`
}

// InventoryQuery parámetros de GET /api/inventory.
type InventoryQuery struct {
	PageRequest
	Status string `query:"status"` // normal | low | critical
	Search string `query:"search"`
}

// StockRecordListResponse lista paginada de registros.
type StockRecordListResponse struct {
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
	Items      []StockRecordResponse `json:"items"`
}
