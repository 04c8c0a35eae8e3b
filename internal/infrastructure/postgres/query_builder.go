package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// searchColumns columnas comparadas con CAST(... AS TEXT) ILIKE en la búsqueda libre.
var searchColumns = []string{
	"item_code",
	"item_description",
	"inward_invoice_no",
	"inward_date",
	"uom",
	"inward_qty",
	"inward_unit_price",
	"inward_total_price",
	"outward_qty",
	"balance_stock_qty",
	"alarm_status",
	"outward_invoice_no",
	"outward_date",
	"outward_unit_price",
	"outward_total_price",
	"eway_bill_number",
	"vehicle_number",
	"po_number",
}

// whereClause compone el WHERE del listado: estado AND (col1 ILIKE t OR col2 ILIKE t ...).
// Devuelve "" si no hay filtros. Los placeholders empiezan en $1.
func whereClause(f repository.StockRecordFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.AlarmStatus != "" {
		args = append(args, f.AlarmStatus)
		conds = append(conds, fmt.Sprintf("alarm_status = $%d", len(args)))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		p := fmt.Sprintf("$%d", len(args))
		ors := make([]string, 0, len(searchColumns))
		for _, col := range searchColumns {
			ors = append(ors, fmt.Sprintf("CAST(%s AS TEXT) ILIKE %s", col, p))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// listQuery SELECT paginado (id DESC) y su COUNT(*) con el mismo WHERE.
func listQuery(f repository.StockRecordFilter) (selectSQL string, selectArgs []any, countSQL string, countArgs []any) {
	where, args := whereClause(f)
	countSQL = "SELECT COUNT(*) FROM stock_items" + where

	selectArgs = append(append([]any{}, args...), f.Limit, f.Offset)
	selectSQL = fmt.Sprintf("SELECT %s FROM stock_items%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		selectColumns, where, len(args)+1, len(args)+2)
	return selectSQL, selectArgs, countSQL, args
}

// listAllQuery SELECT sin paginar (id DESC).
func listAllQuery(f repository.StockRecordFilter) (string, []any) {
	where, args := whereClause(f)
	return fmt.Sprintf("SELECT %s FROM stock_items%s ORDER BY id DESC", selectColumns, where), args
}
