package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// StockRecordUseCase casos de uso CRUD y listado de registros de stock.
// Toda escritura pasa por TxRunner; las lecturas usan el repositorio sobre el pool.
type StockRecordUseCase struct {
	txRunner TxRunner
	repo     repository.StockRecordRepository
}

// NewStockRecordUseCase construye el caso de uso.
func NewStockRecordUseCase(txRunner TxRunner, repo repository.StockRecordRepository) *StockRecordUseCase {
	return &StockRecordUseCase{txRunner: txRunner, repo: repo}
}

// Create valida, calcula los derivados y persiste un registro.
func (uc *StockRecordUseCase) Create(ctx context.Context, in dto.CreateStockRecordRequest) (*dto.StockRecordResponse, error) {
	rec, err := newStockRecord(in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(repo repository.StockRecordRepository) error {
		return repo.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	out := ToStockRecordResponse(rec)
	return &out, nil
}

// CreateBatch inserta un lote completo en una sola transacción: si un elemento es inválido
// o choca con un item_code existente, no se inserta ninguno.
func (uc *StockRecordUseCase) CreateBatch(ctx context.Context, in []dto.CreateStockRecordRequest) (int, error) {
	if len(in) == 0 {
		return 0, fmt.Errorf("%w: el lote está vacío", domain.ErrInvalidInput)
	}
	records := make([]*entity.StockRecord, 0, len(in))
	for i, item := range in {
		rec, err := newStockRecord(item)
		if err != nil {
			return 0, fmt.Errorf("elemento %d: %w", i, err)
		}
		records = append(records, rec)
	}
	err := uc.txRunner.Run(ctx, func(repo repository.StockRecordRepository) error {
		for i, rec := range records {
			if err := repo.Create(ctx, rec); err != nil {
				return fmt.Errorf("elemento %d (%s): %w", i, rec.ItemCode, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// GetByID devuelve el registro con los derivados recalculados. domain.ErrNotFound si no existe.
func (uc *StockRecordUseCase) GetByID(ctx context.Context, id int64) (*dto.StockRecordResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	out := ToStockRecordResponse(rec)
	return &out, nil
}

// Update aplica solo los campos presentes en la petición y recalcula los derivados.
func (uc *StockRecordUseCase) Update(ctx context.Context, id int64, in dto.UpdateStockRecordRequest) (*dto.StockRecordResponse, error) {
	var updated *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(repo repository.StockRecordRepository) error {
		rec, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if err := applyUpdate(rec, in); err != nil {
			return err
		}
		if err := domaininv.Validate(rec); err != nil {
			return err
		}
		domaininv.ComputeDerived(rec)
		if err := repo.Update(ctx, rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := ToStockRecordResponse(updated)
	return &out, nil
}

// Delete borra el registro y devuelve su item_code. domain.ErrNotFound si no existe.
func (uc *StockRecordUseCase) Delete(ctx context.Context, id int64) (string, error) {
	var itemCode string
	err := uc.txRunner.Run(ctx, func(repo repository.StockRecordRepository) error {
		rec, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		itemCode = rec.ItemCode
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return "", err
	}
	return itemCode, nil
}

// List compone filtro de estado + búsqueda + paginación (orden id DESC).
// total_items cuenta después de filtrar y antes de paginar.
func (uc *StockRecordUseCase) List(ctx context.Context, q dto.InventoryQuery) (*dto.StockRecordListResponse, error) {
	q.DefaultPage(0)
	status, err := domaininv.AlarmStatusForBucket(q.Status)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.StockRecordFilter{
		AlarmStatus: status,
		Search:      strings.TrimSpace(q.Search),
		Limit:       q.Limit,
		Offset:      q.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockRecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, ToStockRecordResponse(rec))
	}
	return &dto.StockRecordListResponse{
		Page:       q.Page,
		Limit:      q.Limit,
		TotalItems: total,
		TotalPages: dto.TotalPages(total, q.Limit),
		Items:      items,
	}, nil
}

// ToStockRecordResponse recalcula los derivados y convierte a DTO.
func ToStockRecordResponse(rec *entity.StockRecord) dto.StockRecordResponse {
	domaininv.ComputeDerived(rec)
	return dto.StockRecordResponse{
		ID:                rec.ID,
		ItemCode:          rec.ItemCode,
		ItemDescription:   nullableString(rec.ItemDescription),
		InwardInvoiceNo:   nullableString(rec.InwardInvoiceNo),
		InwardDate:        formatDate(rec.InwardDate),
		UOM:               nullableString(rec.UOM),
		InwardQty:         rec.InwardQty.InexactFloat64(),
		InwardUnitPrice:   rec.InwardUnitPrice.InexactFloat64(),
		InwardTotalPrice:  rec.InwardTotalPrice.InexactFloat64(),
		OutwardQty:        rec.OutwardQty.InexactFloat64(),
		BalanceStockQty:   rec.BalanceStockQty.InexactFloat64(),
		AlarmStatus:       rec.AlarmStatus,
		OutwardInvoiceNo:  nullableString(rec.OutwardInvoiceNo),
		OutwardDate:       formatDate(rec.OutwardDate),
		OutwardUnitPrice:  rec.OutwardUnitPrice.InexactFloat64(),
		OutwardTotalPrice: rec.OutwardTotalPrice.InexactFloat64(),
		EwayBillNumber:    nullableString(rec.EwayBillNumber),
		VehicleNumber:     nullableString(rec.VehicleNumber),
		PONumber:          nullableString(rec.PONumber),
	}
}

func newStockRecord(in dto.CreateStockRecordRequest) (*entity.StockRecord, error) {
	inwardDate, err := parseDate("inward_date", in.InwardDate)
	if err != nil {
		return nil, err
	}
	outwardDate, err := parseDate("outward_date", in.OutwardDate)
	if err != nil {
		return nil, err
	}
	rec := &entity.StockRecord{
		ItemCode:         in.ItemCode,
		ItemDescription:  in.ItemDescription,
		UOM:              in.UOM,
		InwardInvoiceNo:  in.InwardInvoiceNo,
		OutwardInvoiceNo: in.OutwardInvoiceNo,
		EwayBillNumber:   in.EwayBillNumber,
		VehicleNumber:    in.VehicleNumber,
		PONumber:         in.PONumber,
		InwardDate:       inwardDate,
		OutwardDate:      outwardDate,
		InwardQty:        in.InwardQty,
		InwardUnitPrice:  in.InwardUnitPrice,
		OutwardQty:       in.OutwardQty,
		OutwardUnitPrice: in.OutwardUnitPrice,
	}
	if err := domaininv.Validate(rec); err != nil {
		return nil, err
	}
	domaininv.ComputeDerived(rec)
	return rec, nil
}

func applyUpdate(rec *entity.StockRecord, in dto.UpdateStockRecordRequest) error {
	if in.ItemCode.Set {
		if in.ItemCode.Null || strings.TrimSpace(in.ItemCode.Value) == "" {
			return fmt.Errorf("%w: item_code no puede quedar vacío", domain.ErrInvalidInput)
		}
		rec.ItemCode = in.ItemCode.Value
	}
	setString(&rec.ItemDescription, in.ItemDescription)
	setString(&rec.UOM, in.UOM)
	setString(&rec.InwardInvoiceNo, in.InwardInvoiceNo)
	setString(&rec.OutwardInvoiceNo, in.OutwardInvoiceNo)
	setString(&rec.EwayBillNumber, in.EwayBillNumber)
	setString(&rec.VehicleNumber, in.VehicleNumber)
	setString(&rec.PONumber, in.PONumber)
	setDecimal(&rec.InwardQty, in.InwardQty)
	setDecimal(&rec.InwardUnitPrice, in.InwardUnitPrice)
	setDecimal(&rec.OutwardQty, in.OutwardQty)
	setDecimal(&rec.OutwardUnitPrice, in.OutwardUnitPrice)
	if err := setDate(&rec.InwardDate, "inward_date", in.InwardDate); err != nil {
		return err
	}
	return setDate(&rec.OutwardDate, "outward_date", in.OutwardDate)
}

func setString(dst *string, o dto.Optional[string]) {
	if o.Set {
		*dst = o.Value // null deja Value en ""
	}
}

func setDecimal(dst *decimal.Decimal, o dto.Optional[decimal.Decimal]) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = decimal.Zero
		return
	}
	*dst = o.Value
}

func setDate(dst **time.Time, field string, o dto.Optional[string]) error {
	if !o.Set {
		return nil
	}
	d, err := parseDate(field, o.Value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return &d, nil
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(entity.DateLayout)
	return &s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
