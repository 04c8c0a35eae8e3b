package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

// selectColumns orden fijo usado por scanStockRecord. Los textos NULL se leen como "".
const selectColumns = `id, item_code,
	COALESCE(item_description, ''), COALESCE(inward_invoice_no, ''), inward_date, COALESCE(uom, ''),
	inward_qty, inward_unit_price, inward_total_price, outward_qty, balance_stock_qty,
	COALESCE(alarm_status, ''), COALESCE(outward_invoice_no, ''), outward_date,
	outward_unit_price, outward_total_price,
	COALESCE(eway_bill_number, ''), COALESCE(vehicle_number, ''), COALESCE(po_number, '')`

// StockRecordRepo implementación del puerto StockRecordRepository sobre PostgreSQL (usable con pool o tx).
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

// Create inserta el registro y asigna el ID generado. Textos vacíos se guardan como NULL.
func (r *StockRecordRepo) Create(ctx context.Context, rec *entity.StockRecord) error {
	const query = `
		INSERT INTO stock_items (
			item_code, item_description, inward_invoice_no, inward_date, uom,
			inward_qty, inward_unit_price, inward_total_price, outward_qty, balance_stock_qty,
			alarm_status, outward_invoice_no, outward_date, outward_unit_price, outward_total_price,
			eway_bill_number, vehicle_number, po_number)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, NULLIF($5, ''),
			$6, $7, $8, $9, $10,
			NULLIF($11, ''), NULLIF($12, ''), $13, $14, $15,
			NULLIF($16, ''), NULLIF($17, ''), NULLIF($18, ''))
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		rec.ItemCode, rec.ItemDescription, rec.InwardInvoiceNo, rec.InwardDate, rec.UOM,
		rec.InwardQty, rec.InwardUnitPrice, rec.InwardTotalPrice, rec.OutwardQty, rec.BalanceStockQty,
		rec.AlarmStatus, rec.OutwardInvoiceNo, rec.OutwardDate, rec.OutwardUnitPrice, rec.OutwardTotalPrice,
		rec.EwayBillNumber, rec.VehicleNumber, rec.PONumber,
	).Scan(&rec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID. nil, nil si no existe.
func (r *StockRecordRepo) GetByID(ctx context.Context, id int64) (*entity.StockRecord, error) {
	rec, err := scanStockRecord(r.q.QueryRow(ctx, `SELECT `+selectColumns+` FROM stock_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return rec, nil
}

// Update reescribe todas las columnas del registro.
func (r *StockRecordRepo) Update(ctx context.Context, rec *entity.StockRecord) error {
	const query = `
		UPDATE stock_items SET
			item_code = $2, item_description = NULLIF($3, ''), inward_invoice_no = NULLIF($4, ''),
			inward_date = $5, uom = NULLIF($6, ''),
			inward_qty = $7, inward_unit_price = $8, inward_total_price = $9,
			outward_qty = $10, balance_stock_qty = $11, alarm_status = NULLIF($12, ''),
			outward_invoice_no = NULLIF($13, ''), outward_date = $14,
			outward_unit_price = $15, outward_total_price = $16,
			eway_bill_number = NULLIF($17, ''), vehicle_number = NULLIF($18, ''), po_number = NULLIF($19, '')
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		rec.ID, rec.ItemCode, rec.ItemDescription, rec.InwardInvoiceNo,
		rec.InwardDate, rec.UOM,
		rec.InwardQty, rec.InwardUnitPrice, rec.InwardTotalPrice,
		rec.OutwardQty, rec.BalanceStockQty, rec.AlarmStatus,
		rec.OutwardInvoiceNo, rec.OutwardDate,
		rec.OutwardUnitPrice, rec.OutwardTotalPrice,
		rec.EwayBillNumber, rec.VehicleNumber, rec.PONumber,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro por ID (borrado físico).
func (r *StockRecordRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la página y el total filtrado (dos consultas con el mismo WHERE).
func (r *StockRecordRepo) List(ctx context.Context, f repository.StockRecordFilter) ([]*entity.StockRecord, int, error) {
	selectSQL, selectArgs, countSQL, countArgs := listQuery(f)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock items: %w", err)
	}
	if total == 0 {
		return []*entity.StockRecord{}, 0, nil
	}
	list, err := r.query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAll devuelve todos los registros filtrados, sin paginar.
func (r *StockRecordRepo) ListAll(ctx context.Context, f repository.StockRecordFilter) ([]*entity.StockRecord, error) {
	sql, args := listAllQuery(f)
	return r.query(ctx, sql, args...)
}

func (r *StockRecordRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.StockRecord, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StockRecord, 0)
	for rows.Next() {
		rec, err := scanStockRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanStockRecord(row pgx.Row) (*entity.StockRecord, error) {
	var rec entity.StockRecord
	err := row.Scan(
		&rec.ID, &rec.ItemCode,
		&rec.ItemDescription, &rec.InwardInvoiceNo, &rec.InwardDate, &rec.UOM,
		&rec.InwardQty, &rec.InwardUnitPrice, &rec.InwardTotalPrice, &rec.OutwardQty, &rec.BalanceStockQty,
		&rec.AlarmStatus, &rec.OutwardInvoiceNo, &rec.OutwardDate,
		&rec.OutwardUnitPrice, &rec.OutwardTotalPrice,
		&rec.EwayBillNumber, &rec.VehicleNumber, &rec.PONumber,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
