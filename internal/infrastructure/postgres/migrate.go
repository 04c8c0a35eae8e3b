package postgres

import (
	"context"
	"fmt"
)

// schema crea la tabla de registros si no existe. Las columnas de texto admiten NULL (campo ausente);
// las cantidades son NUMERIC sin escala fija para conservar la precisión de entrada.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS stock_items (
		id                  BIGSERIAL PRIMARY KEY,
		item_code           VARCHAR(50)  NOT NULL,
		item_description    VARCHAR(255),
		inward_invoice_no   VARCHAR(100),
		inward_date         DATE,
		uom                 VARCHAR(10),
		inward_qty          NUMERIC NOT NULL DEFAULT 0,
		inward_unit_price   NUMERIC NOT NULL DEFAULT 0,
		inward_total_price  NUMERIC NOT NULL DEFAULT 0,
		outward_qty         NUMERIC NOT NULL DEFAULT 0,
		balance_stock_qty   NUMERIC NOT NULL DEFAULT 0,
		alarm_status        VARCHAR(20),
		outward_invoice_no  VARCHAR(100),
		outward_date        DATE,
		outward_unit_price  NUMERIC NOT NULL DEFAULT 0,
		outward_total_price NUMERIC NOT NULL DEFAULT 0,
		eway_bill_number    VARCHAR(100),
		vehicle_number      VARCHAR(50),
		po_number           VARCHAR(100),
		CONSTRAINT stock_items_item_code_key UNIQUE (item_code)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_items_alarm_status ON stock_items (alarm_status)`,
}

// Migrate aplica el esquema en orden; cada sentencia es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d: %w", i+1, err)
		}
	}
	return nil
}
